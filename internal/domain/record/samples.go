package record

import "time"

// SampleRecords returns the records a fresh store is seeded with, in store
// order.
func SampleRecords() []Record {
	return []Record{
		{
			ID:          "sample-1",
			ProjectName: "Language Automation Fix",
			Category:    CategoryAutomation,
			Status:      StatusCompleted,
			Team:        []string{"Ops", "Platform"},
			StartDate:   "2024-02-01",
			EndDate:     "2024-02-20",
			Problem: Problem{
				What: "Manual language validation workflow taking too much ops time.",
				Why:  "High-volume tasks with frequent SLA breaches and inconsistent outcomes.",
			},
			Contribution: Contribution{
				Summary:          "Designed and implemented an automated language validation pipeline with Playwright tests.",
				Responsibilities: []Responsibility{RespRequirements, RespDesign, RespDevelopment, RespTesting},
			},
			Tech: Tech{
				Languages:      []string{"Python"},
				Frameworks:     []string{"Playwright"},
				Infrastructure: []string{"Internal servers"},
			},
			Impact: []ImpactRow{
				{Metric: "Time per task", Before: "15 mins", After: "5 mins", Improvement: "66% faster"},
				{Metric: "Error rate", Before: "8%", After: "1%", Improvement: "Reduced by 87%"},
			},
			HoursSavedPerMonth:    Float(18),
			UsersImpacted:         Float(6),
			BugsFixed:             Float(3),
			ManualStepsEliminated: Float(4),
			AIValueAdd:            AIValueAdd{Features: []AIFeature{}},
			BeforeText:            "Ops team manually validated language combinations across multiple screens; frequent rework and SLA misses.",
			AfterText:             "Automated validation suite runs on every build; ops only handle flagged edge cases.",
			Evidence:              []EvidenceItem{},
			Feedback:              []FeedbackEntry{},
			FinalBullet:           "Automated the language validation workflow using Python and Playwright, saving ~18 hours/month and eliminating 4 manual steps for 6 ops users.",
			CreatedAt:             time.Date(2024, 2, 21, 10, 0, 0, 0, time.UTC),
			UpdatedAt:             time.Date(2024, 2, 21, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          "sample-2",
			ProjectName: "Doc Processing AI",
			Category:    CategoryAI,
			Status:      StatusCompleted,
			Team:        []string{"Ops", "AI"},
			StartDate:   "2024-03-01",
			EndDate:     "2024-03-25",
			Problem: Problem{
				What: "Manual document processing and classification for incoming client files.",
				Why:  "Slow turnaround time and high cognitive load on ops.",
			},
			Contribution: Contribution{
				Summary: "Built an internal AI-powered document processing and classification tool.",
				Responsibilities: []Responsibility{
					RespRequirements, RespDesign, RespAIIntegration,
					RespDevelopment, RespTesting, RespDeployment,
				},
			},
			Tech: Tech{
				Languages:      []string{"Python"},
				Frameworks:     []string{"FastAPI"},
				Infrastructure: []string{"OpenAI API"},
			},
			Impact: []ImpactRow{
				{Metric: "Hours saved per month", Before: "-", After: "40 hours", Improvement: "40 hours saved/month"},
				{Metric: "Manual steps", Before: "9 steps", After: "2 steps", Improvement: "Eliminated 7 steps"},
			},
			HoursSavedPerMonth:    Float(40),
			UsersImpacted:         Float(15),
			BugsFixed:             Float(0),
			ManualStepsEliminated: Float(7),
			AIValueAdd: AIValueAdd{
				Features: []AIFeature{AITextExtraction, AIEntityMatching, AISummaries, AIClassification},
				Outcome:  "Removed manual judgement for routine cases, improved decision speed, and ensured consistent classifications.",
			},
			BeforeText:  "Ops manually opened each document, read content, tagged metadata, and routed to the right queue.",
			AfterText:   "AI service auto-classifies documents and pre-fills metadata, with ops only confirming edge cases.",
			Evidence:    []EvidenceItem{},
			Feedback:    []FeedbackEntry{},
			FinalBullet: "Built an internal document processing AI service using Python and FastAPI, saving ~40 hours/month, eliminating 7 manual steps, and helping 15 ops users.",
			CreatedAt:   time.Date(2024, 3, 26, 9, 30, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 3, 26, 9, 30, 0, 0, time.UTC),
		},
	}
}
