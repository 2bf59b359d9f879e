package session

import (
	"encoding/json"
	"fmt"
)

// Identity is the authenticated user record returned by the backend at login
// and persisted alongside the credential. JSON tags follow the backend's
// field names.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  Role   `json:"tipo"`
	City  string `json:"cidade"`
}

// decodeIdentity parses a persisted identity and normalizes its role. An
// identity without a usable id or role is malformed and rejected; the caller
// treats that the same as no identity at all.
func decodeIdentity(raw string) (*Identity, error) {
	var id Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		return nil, fmt.Errorf("decoding identity: %w", err)
	}
	id.Role = ParseRole(string(id.Role))
	if id.ID == 0 || !id.Role.Valid() {
		return nil, fmt.Errorf("identity missing id or role")
	}
	return &id, nil
}

func encodeIdentity(id Identity) (string, error) {
	data, err := json.Marshal(id)
	if err != nil {
		return "", fmt.Errorf("encoding identity: %w", err)
	}
	return string(data), nil
}
