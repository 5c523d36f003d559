package matching

import (
	"math"
	"strings"

	"rozgarhub/internal/domain/job"
	"rozgarhub/internal/domain/user"
)

const (
	weightSkills     = 40.0
	weightLocation   = 20.0
	weightCategory   = 20.0
	weightJobType    = 10.0
	weightExperience = 10.0
)

type FactorScore struct {
	Name         string
	Weight       int
	Contribution float64
}

type Result struct {
	Score   int
	Factors []FactorScore
}

// Calculate computes a 0-100 compatibility score between one job posting and
// one candidate profile. A factor contributes 0 when its inputs are missing on
// either side; the weight is not redistributed, so incomplete data lowers the
// achievable ceiling rather than inflating the remaining factors.
func Calculate(p job.Posting, c user.CandidateProfile) Result {
	factors := []FactorScore{
		{Name: "skills", Weight: int(weightSkills), Contribution: skillsScore(p.Skills, c.Skills)},
		{Name: "location", Weight: int(weightLocation), Contribution: locationScore(p.Location, c.Preferences.Location)},
		{Name: "category", Weight: int(weightCategory), Contribution: categoryScore(p.Category, c.Preferences.Category)},
		{Name: "job_type", Weight: int(weightJobType), Contribution: jobTypeScore(p.JobType, c.Preferences.JobType)},
		{Name: "experience", Weight: int(weightExperience), Contribution: experienceScore(p.ExperienceRequired, c.Experience)},
	}

	total := 0.0
	for _, f := range factors {
		total += f.Contribution
	}

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Result{Score: score, Factors: factors}
}

func skillsScore(jobSkills, candidateSkills []string) float64 {
	if len(jobSkills) == 0 || len(candidateSkills) == 0 {
		return 0
	}

	matched := 0
	for _, js := range jobSkills {
		js = strings.ToLower(strings.TrimSpace(js))
		if js == "" {
			continue
		}
		for _, cs := range candidateSkills {
			cs = strings.ToLower(strings.TrimSpace(cs))
			if cs == "" {
				continue
			}
			if strings.Contains(cs, js) || strings.Contains(js, cs) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(jobSkills)) * weightSkills
}

func locationScore(jobLocation, preferredLocation string) float64 {
	jobLocation = strings.TrimSpace(jobLocation)
	preferredLocation = strings.TrimSpace(preferredLocation)
	if jobLocation == "" || preferredLocation == "" {
		return 0
	}
	if strings.Contains(strings.ToLower(jobLocation), strings.ToLower(preferredLocation)) {
		return weightLocation
	}
	return 0
}

func categoryScore(jobCategory, preferredCategory string) float64 {
	jobCategory = strings.TrimSpace(jobCategory)
	preferredCategory = strings.TrimSpace(preferredCategory)
	if jobCategory == "" || preferredCategory == "" {
		return 0
	}
	if strings.EqualFold(jobCategory, preferredCategory) {
		return weightCategory
	}
	return 0
}

// Job types are enum-like tokens, so the comparison stays case-sensitive.
func jobTypeScore(jobType, preferredType string) float64 {
	if jobType == "" || preferredType == "" {
		return 0
	}
	if jobType == preferredType {
		return weightJobType
	}
	return 0
}

func experienceScore(required, candidate string) float64 {
	if strings.TrimSpace(required) == "" || strings.TrimSpace(candidate) == "" {
		return 0
	}

	requiredYears := firstInt(required)
	candidateYears := firstInt(candidate)

	switch {
	case candidateYears >= requiredYears:
		return weightExperience
	case candidateYears >= requiredYears-1:
		return weightExperience * 0.5
	default:
		return 0
	}
}

// firstInt returns the first run of digits in s as an integer, or 0 when the
// string carries no digits at all.
func firstInt(s string) int {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return atoiDigits(s[start:i])
		}
	}
	if start >= 0 {
		return atoiDigits(s[start:])
	}
	return 0
}

func atoiDigits(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
		if n > 1000 {
			return 1000
		}
	}
	return n
}
