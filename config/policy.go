package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Policy is the operator-editable access and catalog policy.
//
//	admin_emails:
//	  - justin@stickershuttle.com
//	sample_pack:
//	  product_ids: [sample-pack]
//	  skus: [SS-SAMPLE-PACK]
//	  name_keywords: [sample pack]
type Policy struct {
	AdminEmails []string         `yaml:"admin_emails"`
	SamplePack  SamplePackPolicy `yaml:"sample_pack"`
}

// SamplePackPolicy lists the identifiers that mark a line item as a sample pack.
type SamplePackPolicy struct {
	ProductIDs   []string `yaml:"product_ids"`
	SKUs         []string `yaml:"skus"`
	NameKeywords []string `yaml:"name_keywords"`
}

// AdminPolicy is the allow-list of identities that may use the admin API.
type AdminPolicy struct {
	emails []string
}

func NewAdminPolicy(emails []string) AdminPolicy {
	return AdminPolicy{emails: slices.Clone(emails)}
}

// IsAdmin compares case-sensitively; "Ops@x.com" and "ops@x.com" are different identities.
func (p AdminPolicy) IsAdmin(email string) bool {
	if email == "" {
		return false
	}
	return slices.Contains(p.emails, email)
}

func (p AdminPolicy) Len() int { return len(p.emails) }

func DefaultPolicy() Policy {
	return Policy{
		SamplePack: SamplePackPolicy{
			ProductIDs:   []string{"sample-pack"},
			SKUs:         []string{"SS-SAMPLE-PACK"},
			NameKeywords: []string{"sample pack"},
		},
	}
}

// LoadPolicy reads the YAML policy at path. An empty path yields DefaultPolicy.
// Sections missing from the file keep their defaults.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return policy, fmt.Errorf("read policy %s: %w", path, err)
	}

	var fromFile Policy
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return policy, fmt.Errorf("parse policy %s: %w", path, err)
	}

	policy.AdminEmails = fromFile.AdminEmails
	if sp := fromFile.SamplePack; len(sp.ProductIDs)+len(sp.SKUs)+len(sp.NameKeywords) > 0 {
		policy.SamplePack = sp
	}
	return policy, nil
}

// ResolvePolicy loads the policy file and lets ADMIN_EMAILS replace its allow-list.
func ResolvePolicy(app AppConfig) (Policy, error) {
	policy, err := LoadPolicy(app.AdminPolicyFile)
	if err != nil {
		return policy, err
	}
	if len(app.AdminEmails) > 0 {
		policy.AdminEmails = app.AdminEmails
	}
	return policy, nil
}
