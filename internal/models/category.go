package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CategoryKind enumerates the fixed prompt categories.
type CategoryKind string

const (
	CategorySystem   CategoryKind = "system"
	CategorySkill    CategoryKind = "skill"
	CategoryAgent    CategoryKind = "agent"
	CategoryRole     CategoryKind = "role"
	CategoryTask     CategoryKind = "task"
	CategoryTemplate CategoryKind = "template"
	CategoryCustom   CategoryKind = "custom"
)

// KnownCategories lists the fixed category tags, in the order they are
// offered to the user during interactive creation.
var KnownCategories = []string{"system", "skill", "agent", "role", "task", "template"}

// Category is a closed set of tags plus one open string-carrying case.
// A custom category serializes as "custom:<name>".
type Category struct {
	Kind CategoryKind
	Name string // set only when Kind == CategoryCustom
}

// NewCategory returns a fixed category of the given kind.
func NewCategory(kind CategoryKind) Category {
	return Category{Kind: kind}
}

// NewCustomCategory returns an open category carrying the given tag name.
func NewCustomCategory(name string) Category {
	return Category{Kind: CategoryCustom, Name: name}
}

// ParseCategory parses a category tag string. Matching is case-insensitive;
// unknown tags are rejected unless they use the "custom:" prefix.
func ParseCategory(s string) (Category, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	switch tag {
	case "system":
		return Category{Kind: CategorySystem}, nil
	case "skill":
		return Category{Kind: CategorySkill}, nil
	case "agent":
		return Category{Kind: CategoryAgent}, nil
	case "role":
		return Category{Kind: CategoryRole}, nil
	case "task":
		return Category{Kind: CategoryTask}, nil
	case "template":
		return Category{Kind: CategoryTemplate}, nil
	}
	if name, ok := strings.CutPrefix(tag, "custom:"); ok {
		return Category{Kind: CategoryCustom, Name: name}, nil
	}
	return Category{}, fmt.Errorf("invalid category: %s", s)
}

// String returns the serialized tag form of the category.
func (c Category) String() string {
	if c.Kind == CategoryCustom {
		return "custom:" + c.Name
	}
	return string(c.Kind)
}

// Equal reports whether two categories carry the same tag. Custom categories
// match only on identical names.
func (c Category) Equal(other Category) bool {
	return c.Kind == other.Kind && c.Name == other.Name
}

// MarshalJSON serializes the category as its tag string.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON parses the category from its tag string.
func (c *Category) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	parsed, err := ParseCategory(tag)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
