package service

import (
	"strings"

	"learnpath_backend/internal/model"
)

// domainRequirement pairs a domain key with its required skill list.
// Matching walks this slice in order and the first hit wins, so the
// enumeration order is part of the contract.
type domainRequirement struct {
	domain string
	skills []string
}

var domainRequirements = []domainRequirement{
	{"computer-science", []string{"Programming Fundamentals", "Data Structures", "Algorithms", "Software Engineering"}},
	{"data-science", []string{"Python", "Statistics", "Machine Learning", "Data Analysis"}},
	{"web-development", []string{"HTML", "CSS", "JavaScript", "React", "Node.js", "Database Design"}},
	{"mobile-development", []string{"Mobile App Design", "iOS Development", "Android Development", "UI/UX", "API Integration"}},
	{"cybersecurity", []string{"Network Security", "Ethical Hacking", "Cryptography", "Security Analysis"}},
	{"ai-ml", []string{"Python", "Machine Learning", "Deep Learning", "Neural Networks"}},
	{"business", []string{"Business Strategy", "Marketing", "Finance", "Management"}},
	{"design", []string{"UI/UX Design", "Graphic Design", "Design Tools", "User Research"}},
	{"marketing", []string{"Digital Marketing", "SEO", "Content Marketing", "Analytics"}},
}

// fallbackDomain is used when the target domain matches nothing. The safe
// default is data-science, not an error.
const fallbackDomain = "data-science"

// NormalizeDomain canonicalizes a caller-supplied domain string:
// lowercased, trimmed, spaces replaced with hyphens.
func NormalizeDomain(domain string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(domain)), " ", "-")
}

// RequiredSkills resolves the skill list for a target domain. A domain
// matches if either string contains the other as a substring, first match
// in table order wins.
func RequiredSkills(targetDomain string) []string {
	normalized := NormalizeDomain(targetDomain)

	for _, req := range domainRequirements {
		if strings.Contains(normalized, req.domain) || strings.Contains(req.domain, normalized) {
			return req.skills
		}
	}

	for _, req := range domainRequirements {
		if req.domain == fallbackDomain {
			return req.skills
		}
	}
	return nil
}

// AnalyzeSkillGaps compares assessed skills against the target domain's
// requirements. For each required skill, the first assessed skill whose
// name contains it (case-insensitive) is taken:
//   - found with level <= 2: gap, recommended level 4
//   - found with level > 2: adequately covered, no gap
//   - not found: gap at current level 0, recommended level 3
//
// Output follows the required-skill order. Never fails; an empty result
// means every requirement is covered.
func AnalyzeSkillGaps(assessedSkills []model.AssessedSkill, targetDomain string) []model.SkillGap {
	required := RequiredSkills(targetDomain)
	gaps := make([]model.SkillGap, 0, len(required))

	for _, skill := range required {
		found := false
		needle := strings.ToLower(skill)

		for _, assessed := range assessedSkills {
			if strings.Contains(strings.ToLower(assessed.Name), needle) {
				found = true
				if assessed.Level <= 2 {
					gaps = append(gaps, model.SkillGap{
						Name:             skill,
						CurrentLevel:     assessed.Level,
						RecommendedLevel: 4,
						Priority:         "High",
					})
				}
				break
			}
		}

		if !found {
			gaps = append(gaps, model.SkillGap{
				Name:             skill,
				CurrentLevel:     0,
				RecommendedLevel: 3,
				Priority:         "High",
			})
		}
	}

	return gaps
}
