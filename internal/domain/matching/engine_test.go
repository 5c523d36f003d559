package matching

import (
	"testing"

	"rozgarhub/internal/domain/job"
	"rozgarhub/internal/domain/user"
)

func fullMatchPosting() job.Posting {
	return job.Posting{
		Title:              "Backend Developer",
		Skills:             []string{"Go", "PostgreSQL"},
		Category:           "IT",
		Location:           "Chandigarh, Punjab",
		ExperienceRequired: "2+ years",
		JobType:            job.TypeFullTime,
	}
}

func fullMatchCandidate() user.CandidateProfile {
	return user.CandidateProfile{
		Skills:     []string{"golang", "postgresql"},
		Experience: "3 years",
		Preferences: user.Preferences{
			Category: "it",
			Location: "chandigarh",
			JobType:  job.TypeFullTime,
		},
	}
}

func TestCalculate_FullMatch(t *testing.T) {
	res := Calculate(fullMatchPosting(), fullMatchCandidate())
	if res.Score != 100 {
		t.Fatalf("expected score 100, got %d", res.Score)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	p := fullMatchPosting()
	c := fullMatchCandidate()
	first := Calculate(p, c)
	for i := 0; i < 5; i++ {
		if got := Calculate(p, c); got.Score != first.Score {
			t.Fatalf("score changed between runs: %d vs %d", first.Score, got.Score)
		}
	}
}

func TestCalculate_RangeBounds(t *testing.T) {
	cases := []struct {
		name string
		p    job.Posting
		c    user.CandidateProfile
	}{
		{name: "empty both", p: job.Posting{}, c: user.CandidateProfile{}},
		{name: "full match", p: fullMatchPosting(), c: fullMatchCandidate()},
		{name: "disjoint", p: fullMatchPosting(), c: user.CandidateProfile{
			Skills:      []string{"cooking"},
			Experience:  "0 years",
			Preferences: user.Preferences{Category: "Sales", Location: "Mumbai", JobType: job.TypeContract},
		}},
	}
	for _, tc := range cases {
		res := Calculate(tc.p, tc.c)
		if res.Score < 0 || res.Score > 100 {
			t.Fatalf("%s: score %d outside [0,100]", tc.name, res.Score)
		}
	}
}

func TestCalculate_EmptyJobSkillsContributeZero(t *testing.T) {
	p := fullMatchPosting()
	p.Skills = nil
	c := fullMatchCandidate()

	res := Calculate(p, c)
	// location 20 + category 20 + type 10 + experience 10
	if res.Score != 60 {
		t.Fatalf("expected 60 with no job skills, got %d", res.Score)
	}
}

func TestCalculate_SkillsSubstringBothDirections(t *testing.T) {
	p := job.Posting{Skills: []string{"react", "Node.js"}}
	c := user.CandidateProfile{Skills: []string{"ReactJS", "node"}}

	res := Calculate(p, c)
	if res.Score != 40 {
		t.Fatalf("expected 40 from skills alone, got %d", res.Score)
	}
}

func TestCalculate_PartialSkillsRounded(t *testing.T) {
	p := job.Posting{Skills: []string{"go", "rust", "kafka"}}
	c := user.CandidateProfile{Skills: []string{"go"}}

	res := Calculate(p, c)
	// 1/3 of 40 rounds to 13
	if res.Score != 13 {
		t.Fatalf("expected 13, got %d", res.Score)
	}
}

func TestCalculate_ExperienceNoDigitsOnBothSides(t *testing.T) {
	p := job.Posting{ExperienceRequired: "fresher welcome"}
	c := user.CandidateProfile{Experience: "entry level"}

	// Both parse to 0 and 0 >= 0, so the factor pays out in full.
	res := Calculate(p, c)
	if res.Score != 10 {
		t.Fatalf("expected 10, got %d", res.Score)
	}
}

func TestCalculate_ExperienceCandidateNoDigits(t *testing.T) {
	p := job.Posting{ExperienceRequired: "5 years"}
	c := user.CandidateProfile{Experience: "some experience"}

	res := Calculate(p, c)
	if res.Score != 0 {
		t.Fatalf("expected 0 when candidate has no extractable years, got %d", res.Score)
	}
}

func TestCalculate_ExperienceMissingEitherSide(t *testing.T) {
	p := job.Posting{ExperienceRequired: "2 years"}
	res := Calculate(p, user.CandidateProfile{})
	if res.Score != 0 {
		t.Fatalf("expected 0 when candidate experience absent, got %d", res.Score)
	}

	c := user.CandidateProfile{Experience: "2 years"}
	res = Calculate(job.Posting{}, c)
	if res.Score != 0 {
		t.Fatalf("expected 0 when job requirement absent, got %d", res.Score)
	}
}

func TestCalculate_ExperienceHalfWeight(t *testing.T) {
	p := job.Posting{ExperienceRequired: "3 years"}
	c := user.CandidateProfile{Experience: "2 years"}

	res := Calculate(p, c)
	if res.Score != 5 {
		t.Fatalf("expected half weight 5, got %d", res.Score)
	}
}

func TestCalculate_JobTypeCaseSensitive(t *testing.T) {
	p := job.Posting{JobType: job.TypeFullTime}
	c := user.CandidateProfile{Preferences: user.Preferences{JobType: "full-time"}}

	res := Calculate(p, c)
	if res.Score != 0 {
		t.Fatalf("job type tokens must compare case-sensitively, got %d", res.Score)
	}
}

func TestCalculate_LocationSubstring(t *testing.T) {
	p := job.Posting{Location: "Mohali, Punjab"}
	c := user.CandidateProfile{Preferences: user.Preferences{Location: "punjab"}}

	res := Calculate(p, c)
	if res.Score != 20 {
		t.Fatalf("expected 20, got %d", res.Score)
	}
}

func TestFirstInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"2+ years", 2},
		{"minimum 10 years", 10},
		{"3-5 years", 3},
		{"fresher", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := firstInt(tc.in); got != tc.want {
			t.Fatalf("firstInt(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
