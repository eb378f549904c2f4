package record

import "time"

// Category classifies the kind of work a record describes.
type Category string

const (
	CategoryAutomation   Category = "Automation"
	CategoryFullStack    Category = "Full-stack"
	CategoryAI           Category = "AI"
	CategoryOpsSupport   Category = "Ops Support"
	CategoryBugFix       Category = "Bug Fix"
	CategoryInternalTool Category = "Internal Tool"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryAutomation,
	CategoryFullStack,
	CategoryAI,
	CategoryOpsSupport,
	CategoryBugFix,
	CategoryInternalTool,
}

// Status is the delivery state of the work.
type Status string

const (
	StatusCompleted        Status = "Completed"
	StatusInProgress       Status = "In Progress"
	StatusIteration2       Status = "Iteration 2"
	StatusMaintenance      Status = "Maintenance"
	StatusFeasibilityCheck Status = "Feasibility Check"
	StatusPoC              Status = "PoC"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{
	StatusCompleted,
	StatusInProgress,
	StatusIteration2,
	StatusMaintenance,
	StatusFeasibilityCheck,
	StatusPoC,
}

// Responsibility tags what the author personally did on a project.
type Responsibility string

const (
	RespRequirements  Responsibility = "Requirement understanding"
	RespDesign        Responsibility = "Designing solution"
	RespDevelopment   Responsibility = "Development"
	RespAutomation    Responsibility = "Automation scripting"
	RespAIIntegration Responsibility = "AI model integration"
	RespTesting       Responsibility = "Testing & QA"
	RespDeployment    Responsibility = "Deployment"
	RespDocumentation Responsibility = "Documentation"
	RespTraining      Responsibility = "End-user training"
	RespSupport       Responsibility = "Support/maintenance"
)

// Responsibilities lists every valid responsibility tag.
var Responsibilities = []Responsibility{
	RespRequirements,
	RespDesign,
	RespDevelopment,
	RespAutomation,
	RespAIIntegration,
	RespTesting,
	RespDeployment,
	RespDocumentation,
	RespTraining,
	RespSupport,
}

// AIFeature tags the AI capability a project delivered.
type AIFeature string

const (
	AITextExtraction     AIFeature = "Text extraction"
	AIEntityMatching     AIFeature = "Entity matching"
	AISummaries          AIFeature = "Summaries"
	AIDocumentAutomation AIFeature = "Document automation"
	AIChatbot            AIFeature = "Chatbot / LLM assistant"
	AIClassification     AIFeature = "NLP-based classification"
	AIDataValidation     AIFeature = "Data validation"
)

// AIFeatures lists every valid AI feature tag.
var AIFeatures = []AIFeature{
	AITextExtraction,
	AIEntityMatching,
	AISummaries,
	AIDocumentAutomation,
	AIChatbot,
	AIClassification,
	AIDataValidation,
}

// EvidenceType distinguishes uploaded files from external links.
type EvidenceType string

const (
	EvidenceUpload EvidenceType = "upload"
	EvidenceLink   EvidenceType = "link"
)

// Record is one logged achievement.
type Record struct {
	ID          string   `json:"id"`
	ProjectName string   `json:"projectName"`
	Category    Category `json:"category"`
	Status      Status   `json:"status"`
	Team        []string `json:"team"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`

	Problem      Problem      `json:"problem"`
	Contribution Contribution `json:"contribution"`
	Tech         Tech         `json:"tech"`
	Impact       []ImpactRow  `json:"impact"`

	HoursSavedPerMonth    *float64 `json:"hoursSavedPerMonth"`
	UsersImpacted         *float64 `json:"usersImpacted"`
	BugsFixed             *float64 `json:"bugsFixed"`
	ManualStepsEliminated *float64 `json:"manualStepsEliminated"`

	AIValueAdd AIValueAdd      `json:"aiValueAdd"`
	BeforeText string          `json:"beforeText"`
	AfterText  string          `json:"afterText"`
	Evidence   []EvidenceItem  `json:"evidence"`
	Feedback   []FeedbackEntry `json:"feedback"`

	FinalBullet string    `json:"finalBullet"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Starred     bool      `json:"starred"`
}

// Problem describes what was broken and why it mattered.
type Problem struct {
	What string `json:"what"`
	Why  string `json:"why"`
}

// Contribution describes the author's part in the work.
type Contribution struct {
	Summary          string           `json:"summary"`
	Responsibilities []Responsibility `json:"responsibilities"`
}

// Tech holds free-text technology tags.
type Tech struct {
	Languages      []string `json:"languages"`
	Frameworks     []string `json:"frameworks"`
	Infrastructure []string `json:"infrastructure"`
}

// ImpactRow is one line of the user-defined metrics table.
type ImpactRow struct {
	Metric      string `json:"metric"`
	Before      string `json:"before"`
	After       string `json:"after"`
	Improvement string `json:"improvement"`
}

// AIValueAdd records what AI contributed to the outcome.
type AIValueAdd struct {
	Features []AIFeature `json:"features"`
	Outcome  string      `json:"outcome"`
}

// EvidenceItem is an uploaded file or an external link.
// URL is a data URI or blob reference for uploads and is never fetched.
type EvidenceItem struct {
	Type     EvidenceType `json:"type"`
	Label    string       `json:"label"`
	URL      string       `json:"url"`
	MIMEType string       `json:"mimeType,omitempty"`
}

// FeedbackEntry is a piece of appreciation received for the work.
type FeedbackEntry struct {
	From    string `json:"from"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

// Hours returns HoursSavedPerMonth, or 0 when absent.
func (r Record) Hours() float64 { return valueOrZero(r.HoursSavedPerMonth) }

// Users returns UsersImpacted, or 0 when absent.
func (r Record) Users() float64 { return valueOrZero(r.UsersImpacted) }

// Bugs returns BugsFixed, or 0 when absent.
func (r Record) Bugs() float64 { return valueOrZero(r.BugsFixed) }

// Steps returns ManualStepsEliminated, or 0 when absent.
func (r Record) Steps() float64 { return valueOrZero(r.ManualStepsEliminated) }

// ImpactScore ranks records for the "Most impact" sort.
func (r Record) ImpactScore() float64 {
	return 2*r.Hours() + r.Users() + r.Steps()
}

// LastTouched is the timestamp used by the "Latest" sort.
func (r Record) LastTouched() time.Time {
	if !r.UpdatedAt.IsZero() {
		return r.UpdatedAt
	}
	return r.CreatedAt
}

// BulletText is the text copied for a record: the final bullet, else the
// problem statement, else the project name.
func (r Record) BulletText() string {
	switch {
	case r.FinalBullet != "":
		return r.FinalBullet
	case r.Problem.What != "":
		return r.Problem.What
	default:
		return r.ProjectName
	}
}

// KPIs summarises a view of records.
type KPIs struct {
	TotalHoursSaved  float64 `json:"totalHoursSaved"`
	TotalUsersHelped float64 `json:"totalUsersHelped"`
	TotalAutomations int     `json:"totalAutomations"`
	TotalBugsFixed   float64 `json:"totalBugsFixed"`
}

// Add returns the field-wise sum of two KPI sets.
func (k KPIs) Add(other KPIs) KPIs {
	return KPIs{
		TotalHoursSaved:  k.TotalHoursSaved + other.TotalHoursSaved,
		TotalUsersHelped: k.TotalUsersHelped + other.TotalUsersHelped,
		TotalAutomations: k.TotalAutomations + other.TotalAutomations,
		TotalBugsFixed:   k.TotalBugsFixed + other.TotalBugsFixed,
	}
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Float returns a pointer to v, for populating optional numeric fields.
func Float(v float64) *float64 {
	return &v
}
