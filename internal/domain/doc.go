// Package domain contains the core business entities of the task board:
// registered users and the tasks they own. Entities are plain data with
// constructor validation, independent of any specific infrastructure or
// delivery mechanism.
package domain
