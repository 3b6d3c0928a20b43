package performance

import "time"

// Review ratings are 0-5 integers across six dimensions. Like every other
// record type, values outside that range are a form-layer concern.
type Review struct {
	ID               int       `json:"id"`
	EmployeeID       int       `json:"employeeId"`
	ReviewPeriod     string    `json:"reviewPeriod"`
	OverallRating    int       `json:"overallRating"`
	TechnicalSkills  int       `json:"technicalSkills"`
	Communication    int       `json:"communication"`
	Leadership       int       `json:"leadership"`
	Teamwork         int       `json:"teamwork"`
	ProblemSolving   int       `json:"problemSolving"`
	Goals            string    `json:"goals"`
	Achievements     string    `json:"achievements"`
	ImprovementAreas string    `json:"improvementAreas"`
	Feedback         string    `json:"feedback"`
	ReviewerName     string    `json:"reviewerName"`
	ReviewDate       time.Time `json:"reviewDate"`
}

type ReviewPatch struct {
	EmployeeID       *int       `json:"employeeId"`
	ReviewPeriod     *string    `json:"reviewPeriod"`
	OverallRating    *int       `json:"overallRating"`
	TechnicalSkills  *int       `json:"technicalSkills"`
	Communication    *int       `json:"communication"`
	Leadership       *int       `json:"leadership"`
	Teamwork         *int       `json:"teamwork"`
	ProblemSolving   *int       `json:"problemSolving"`
	Goals            *string    `json:"goals"`
	Achievements     *string    `json:"achievements"`
	ImprovementAreas *string    `json:"improvementAreas"`
	Feedback         *string    `json:"feedback"`
	ReviewerName     *string    `json:"reviewerName"`
	ReviewDate       *time.Time `json:"reviewDate"`
}

func (p ReviewPatch) Apply(r *Review) {
	if p.EmployeeID != nil {
		r.EmployeeID = *p.EmployeeID
	}
	if p.ReviewPeriod != nil {
		r.ReviewPeriod = *p.ReviewPeriod
	}
	if p.OverallRating != nil {
		r.OverallRating = *p.OverallRating
	}
	if p.TechnicalSkills != nil {
		r.TechnicalSkills = *p.TechnicalSkills
	}
	if p.Communication != nil {
		r.Communication = *p.Communication
	}
	if p.Leadership != nil {
		r.Leadership = *p.Leadership
	}
	if p.Teamwork != nil {
		r.Teamwork = *p.Teamwork
	}
	if p.ProblemSolving != nil {
		r.ProblemSolving = *p.ProblemSolving
	}
	if p.Goals != nil {
		r.Goals = *p.Goals
	}
	if p.Achievements != nil {
		r.Achievements = *p.Achievements
	}
	if p.ImprovementAreas != nil {
		r.ImprovementAreas = *p.ImprovementAreas
	}
	if p.Feedback != nil {
		r.Feedback = *p.Feedback
	}
	if p.ReviewerName != nil {
		r.ReviewerName = *p.ReviewerName
	}
	if p.ReviewDate != nil {
		r.ReviewDate = *p.ReviewDate
	}
}
