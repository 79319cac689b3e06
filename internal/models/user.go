package models

import (
	"encoding/json"
	"fmt"
	"maps"
	"math/big"

	"github.com/go-viper/mapstructure/v2"
)

const (
	FieldID        = "id"
	FieldUsername  = "username"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPassword  = "password"
)

var (
	// RequiredFields must all be present on a payload that creates a user.
	RequiredFields = []string{FieldID, FieldUsername, FieldFirstName, FieldLastName, FieldEmail, FieldPassword}
	// UpdateFields must all be present on a payload that updates a user.
	UpdateFields = []string{FieldUsername, FieldFirstName, FieldLastName, FieldEmail, FieldPassword}
)

// User represents a user record held by the store.
// Every field keeps the caller's original JSON value, null included; every
// field the record does not know about is carried in Extra and written back
// out on encode.
type User struct {
	ID        any            `mapstructure:"id"`
	Username  any            `mapstructure:"username"`
	FirstName any            `mapstructure:"firstName"`
	LastName  any            `mapstructure:"lastName"`
	Email     any            `mapstructure:"email"`
	Password  any            `mapstructure:"password"`
	Extra     map[string]any `mapstructure:",remain"`
}

// NewUser creates a new User instance with the required fields set.
// Note: No validation is performed here.
func NewUser(id, username, firstName, lastName, email, password any) *User {
	return &User{
		ID:        id,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	}
}

// SeedUser returns the record the store starts with and is reset to.
func SeedUser() User {
	return *NewUser(1, "theUser", "John", "James", "john@email.com", "12345")
}

// FromDocument decodes a JSON object into a User. Values are taken as they
// are, whatever their JSON type.
func FromDocument(doc map[string]any) (*User, error) {
	user := &User{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: user,
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build user decoder: %w", err)
	}

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return user, nil
}

// IDKey is the text form of the user's id, matched against the last path
// segment of a request.
func (u *User) IDKey() string {
	return IDKey(u.ID)
}

// IDKey returns the canonical text form of a raw id value.
func IDKey(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// SameID reports whether the user's id equals id by value.
func (u *User) SameID(id any) bool {
	return IDValueKey(u.ID) == IDValueKey(id)
}

// IDValueKey returns a key under which equal id values collide: numbers
// compare by value (1, 1.0 and 1e0 are one id), booleans count as 0 and 1,
// and text never equals a number.
func IDValueKey(id any) string {
	var n *big.Rat
	switch v := id.(type) {
	case nil:
		return "null"
	case string:
		return "s:" + v
	case bool:
		n = new(big.Rat)
		if v {
			n.SetInt64(1)
		}
	case json.Number:
		n, _ = new(big.Rat).SetString(v.String())
	case int:
		n = new(big.Rat).SetInt64(int64(v))
	case int64:
		n = new(big.Rat).SetInt64(v)
	case float64:
		n = new(big.Rat).SetFloat64(v)
	}
	if n != nil {
		return "n:" + n.RatString()
	}
	return fmt.Sprintf("o:%v", id)
}

// Document flattens the user back into its wire shape.
func (u *User) Document() map[string]any {
	doc := make(map[string]any, len(RequiredFields)+len(u.Extra))
	maps.Copy(doc, u.Extra)
	doc[FieldID] = u.ID
	doc[FieldUsername] = u.Username
	doc[FieldFirstName] = u.FirstName
	doc[FieldLastName] = u.LastName
	doc[FieldEmail] = u.Email
	doc[FieldPassword] = u.Password
	return doc
}

// MarshalJSON encodes the user as a flat object including extra fields.
func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Document())
}

// Merge overwrites and adds the keys of update on the user. The id is the
// record's identity and is never taken from update.
func (u *User) Merge(update map[string]any) error {
	doc := u.Document()
	for key, value := range update {
		if key == FieldID {
			continue
		}
		doc[key] = value
	}

	merged, err := FromDocument(doc)
	if err != nil {
		return err
	}

	merged.ID = u.ID
	*u = *merged
	return nil
}

// Clone returns a copy that shares no map with u.
func (u *User) Clone() User {
	c := *u
	if u.Extra != nil {
		c.Extra = maps.Clone(u.Extra)
	}
	return c
}
