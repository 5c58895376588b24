// Package domain contains the core entities of the destiny matrix: digits,
// birthdates, matrix positions and the derived matrix itself. Everything here
// is a pure value type or a pure function, independent of any delivery
// mechanism.
package domain
