package cssprune

import (
	"sort"
	"strings"
)

// Category is a human-facing bucket for the unused-class report.
type Category struct {
	Name    string
	Classes []string
}

// categoryRule assigns class names to a report bucket.
type categoryRule struct {
	name  string
	match func(string) bool
}

// categoryRules partitions unused classes for readability. First matching
// bucket wins, in this order; unmatched names fall through to Other.
var categoryRules = []categoryRule{
	{"Buttons", hasPrefix("btn-")},
	{"Cards", hasPrefix("card")},
	{"Content", hasPrefix("content-")},
	{"Forms", hasPrefix("form-")},
	{"Features", hasPrefix("feature-")},
	{"FAQ", hasPrefix("faq-")},
	{"Footer", hasPrefix("footer")},
	{"Navigation", hasPrefix("nav")},
	{"Sections", hasPrefix("section")},
	{"Animations", func(name string) bool {
		return strings.Contains(name, "anim") ||
			strings.Contains(name, "fade") ||
			strings.Contains(name, "slide")
	}},
}

func hasPrefix(prefix string) func(string) bool {
	return func(name string) bool { return strings.HasPrefix(name, prefix) }
}

// Categorize partitions unused class names into the fixed report buckets.
// Only non-empty buckets are returned; each bucket's classes are sorted.
func Categorize(unused []string) []Category {
	buckets := make(map[string][]string)

	for _, name := range unused {
		bucket := "Other"
		for _, rule := range categoryRules {
			if rule.match(name) {
				bucket = rule.name
				break
			}
		}
		buckets[bucket] = append(buckets[bucket], name)
	}

	var categories []Category
	for _, rule := range categoryRules {
		if classes, ok := buckets[rule.name]; ok {
			sort.Strings(classes)
			categories = append(categories, Category{Name: rule.name, Classes: classes})
		}
	}
	if classes, ok := buckets["Other"]; ok {
		sort.Strings(classes)
		categories = append(categories, Category{Name: "Other", Classes: classes})
	}

	return categories
}
