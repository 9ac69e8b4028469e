// internal/domain/slides/entity.go
package slides

// Slide represents one hero banner slide
type Slide struct {
	ID      string `json:"_id"`
	Text    string `json:"text"`
	Subtext string `json:"subtext"`
	Image   string `json:"image"`
}
