package model

// Course is one row of the course catalog CSV. Every column is optional in
// the source file; ApplyDefaults resolves the documented fallbacks once at
// load time so the scoring code never has to.
type Course struct {
	Title       string  `csv:"title" json:"title"`
	Provider    string  `csv:"provider" json:"provider"`
	Domain      string  `csv:"domain" json:"domain"`
	Skills      string  `csv:"skills" json:"skills"`
	Level       string  `csv:"level" json:"level"`
	Format      string  `csv:"format" json:"format"`
	Duration    string  `csv:"duration" json:"duration"`
	Rating      float64 `csv:"rating" json:"rating"`
	Students    string  `csv:"students" json:"students"`
	Description string  `csv:"description" json:"description"`
}

// Student is one row of the students CSV. Rows are loaded and counted but
// not consumed by the recommendation pipeline.
type Student struct {
	ID     string `csv:"id" json:"id"`
	Name   string `csv:"name" json:"name"`
	Domain string `csv:"domain" json:"domain"`
}

// ApplyDefaults fills absent catalog columns with their documented values.
func (c *Course) ApplyDefaults() {
	if c.Title == "" {
		c.Title = "Unknown Course"
	}
	if c.Provider == "" {
		c.Provider = "Unknown"
	}
	if c.Level == "" {
		c.Level = LevelBeginner
	}
	if c.Format == "" {
		c.Format = "video"
	}
	if c.Duration == "" {
		c.Duration = "N/A"
	}
	if c.Students == "" {
		c.Students = "N/A"
	}
}
