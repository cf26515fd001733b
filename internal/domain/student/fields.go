package student

import (
	"regexp"
	"strings"

	"github.com/tabuddy/tabuddy/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// NAME
// ══════════════════════════════════════════════════════════════════════════════

// Name is a student's full name.
type Name string

// MessageConstraintsName is shown when a name fails validation.
const MessageConstraintsName = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

// The first character must not be whitespace, otherwise " " (a blank string) becomes a valid input.
var nameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)

// IsValidName reports whether s is a valid name.
func IsValidName(s string) bool {
	return nameRegex.MatchString(s)
}

// NewName validates s.
func NewName(s string) (Name, error) {
	if !IsValidName(s) {
		return "", shared.ValidationError("student", "NewName", MessageConstraintsName)
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT ID
// ══════════════════════════════════════════════════════════════════════════════

// ID is the matriculation number, e.g. "A1111111A".
type ID string

// MessageConstraintsID is shown when a student ID fails validation.
const MessageConstraintsID = "Student IDs should start with a letter, followed by 7 digits, and end with a letter, e.g. A1234567X"

var idRegex = regexp.MustCompile(`^[A-Z][0-9]{7}[A-Z]$`)

// IsValidID reports whether s is a valid student ID (case-insensitive).
func IsValidID(s string) bool {
	return idRegex.MatchString(strings.ToUpper(s))
}

// NewID validates s and returns it upper-cased.
func NewID(s string) (ID, error) {
	if !IsValidID(s) {
		return "", shared.ValidationError("student", "NewID", MessageConstraintsID)
	}
	return ID(strings.ToUpper(s)), nil
}

func (id ID) String() string { return string(id) }

// ══════════════════════════════════════════════════════════════════════════════
// EMAIL
// ══════════════════════════════════════════════════════════════════════════════

// Email is a student's email address.
type Email string

// MessageConstraintsEmail is shown when an email fails validation.
const MessageConstraintsEmail = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
	"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
	"the parentheses, (+_.-).\n" +
	"2. This is followed by a '@' and then a domain name. " +
	"The domain name must:\n" +
	"    - be at least 2 characters long\n" +
	"    - start and end with alphanumeric characters\n" +
	"    - consist of alphanumeric characters, a period or a hyphen for the characters in between, if any."

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9_+.\-]+@[A-Za-z0-9][A-Za-z0-9.\-]*[A-Za-z0-9]$`)

// IsValidEmail reports whether s is a valid email.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// NewEmail validates s.
func NewEmail(s string) (Email, error) {
	if !IsValidEmail(s) {
		return "", shared.ValidationError("student", "NewEmail", MessageConstraintsEmail)
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

// ══════════════════════════════════════════════════════════════════════════════
// TELEGRAM HANDLE
// ══════════════════════════════════════════════════════════════════════════════

// TeleHandle is a Telegram username including the leading '@'.
type TeleHandle string

// MessageConstraintsTeleHandle is shown when a handle fails validation.
const MessageConstraintsTeleHandle = "Telegram handles should start with '@' followed by 5 to 32 letters, digits or underscores"

var teleHandleRegex = regexp.MustCompile(`^@[A-Za-z0-9_]{5,32}$`)

// IsValidTeleHandle reports whether s is a valid Telegram handle.
func IsValidTeleHandle(s string) bool {
	return teleHandleRegex.MatchString(s)
}

// NewTeleHandle validates s.
func NewTeleHandle(s string) (TeleHandle, error) {
	if !IsValidTeleHandle(s) {
		return "", shared.ValidationError("student", "NewTeleHandle", MessageConstraintsTeleHandle)
	}
	return TeleHandle(s), nil
}

func (h TeleHandle) String() string { return string(h) }
