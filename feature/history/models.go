package history

import "time"

// Run is one persisted comparison run: which workbooks were compared and the
// aggregate outcome counts.
type Run struct {
	ID                    string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	LeftName              string    `gorm:"column:left_name;size:255" json:"left_name"`
	RightName             string    `gorm:"column:right_name;size:255" json:"right_name"`
	SheetsCompared        int       `gorm:"column:sheets_compared" json:"sheets_compared"`
	SheetsWithDifferences int       `gorm:"column:sheets_with_differences" json:"sheets_with_differences"`
	TotalIdentical        int       `gorm:"column:total_identical" json:"total_identical"`
	TotalModified         int       `gorm:"column:total_modified" json:"total_modified"`
	TotalOnlyLeft         int       `gorm:"column:total_only_left" json:"total_only_left"`
	TotalOnlyRight        int       `gorm:"column:total_only_right" json:"total_only_right"`
	Identical             bool      `gorm:"column:identical" json:"identical"`
	DurationMS            int64     `gorm:"column:duration_ms" json:"duration_ms"`
	CreatedAt             time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name used by gorm.
func (Run) TableName() string {
	return "comparison_runs"
}
