package session

// Profile is the canonical user record derived from whatever shape the
// backend returns from /users/me. Downstream code depends only on this.
type Profile struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// id and name keys observed across backend versions, in preference order.
var (
	idKeys   = []string{"id", "user_id", "uuid", "sub"}
	nameKeys = []string{"name", "username", "display_name"}
)

// NormalizeProfile maps an opaque backend profile into a Profile.
//
// The backend has been inconsistent about field names (id vs user_id vs
// sub, name vs username); normalization happens once here so the rest of
// the application never sees the raw shape. Returns nil for a nil map.
func NormalizeProfile(raw map[string]any) *Profile {
	if raw == nil {
		return nil
	}

	p := &Profile{
		ID:    firstString(raw, idKeys),
		Name:  firstString(raw, nameKeys),
		Email: stringField(raw, "email"),
		Role:  stringField(raw, "role"),
	}

	// A profile without any name still needs something to display.
	if p.Name == "" {
		p.Name = p.Email
	}
	return p
}

func firstString(raw map[string]any, keys []string) string {
	for _, key := range keys {
		if v := stringField(raw, key); v != "" {
			return v
		}
	}
	return ""
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}
