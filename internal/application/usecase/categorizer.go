package usecase

import (
	"strings"

	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
)

// keywordGroup pairs a category with the lowercase substrings that identify it.
type keywordGroup struct {
	category entity.Category
	keywords []string
}

// defaultKeywordGroups is the built-in classification table, evaluated in
// priority order. First matching group wins.
var defaultKeywordGroups = []keywordGroup{
	{entity.CategoryCompute, []string{"ec2", "lambda", "ecs", "eks", "lightsail"}},
	{entity.CategoryStorage, []string{"s3", "ebs", "efs", "glacier"}},
	{entity.CategoryDatabase, []string{"rds", "dynamodb", "redshift"}},
	{entity.CategoryNetworking, []string{"vpc", "cloudfront", "route 53", "elb", "alb"}},
}

// Categorizer assigns a service name to a spend category by case-insensitive
// substring matching against ordered keyword groups. Unmatched names always
// resolve to Other.
type Categorizer struct {
	groups []keywordGroup
}

// NewCategorizer creates a categorizer over the built-in keyword table.
func NewCategorizer() *Categorizer {
	return &Categorizer{groups: defaultKeywordGroups}
}

// NewCategorizerWithKeywords creates a categorizer from a category-name to
// keyword-list table, preserving the fixed priority order. Categories absent
// from the table keep their built-in keywords; Other takes no keywords.
func NewCategorizerWithKeywords(table map[string][]string) *Categorizer {
	if len(table) == 0 {
		return NewCategorizer()
	}

	groups := make([]keywordGroup, 0, len(defaultKeywordGroups))
	for _, def := range defaultKeywordGroups {
		group := keywordGroup{category: def.category, keywords: def.keywords}
		if keywords, ok := table[string(def.category)]; ok && len(keywords) > 0 {
			lowered := make([]string, len(keywords))
			for i, kw := range keywords {
				lowered[i] = strings.ToLower(kw)
			}
			group.keywords = lowered
		}
		groups = append(groups, group)
	}
	return &Categorizer{groups: groups}
}

// Categorize maps a raw service name to its spend category.
func (c *Categorizer) Categorize(serviceName string) entity.Category {
	name := strings.ToLower(serviceName)
	for _, group := range c.groups {
		for _, keyword := range group.keywords {
			if strings.Contains(name, keyword) {
				return group.category
			}
		}
	}
	return entity.CategoryOther
}
