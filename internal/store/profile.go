package store

import "strings"

const ProfileNameKey = "aura_name"

// Profile is the plain-string display name used for the greeting.
type Profile struct {
	kv *KV
}

func (p *Profile) Name() string {
	return strings.TrimSpace(p.kv.GetString(ProfileNameKey))
}

func (p *Profile) SetName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	p.kv.SetString(ProfileNameKey, name)
	return true
}
