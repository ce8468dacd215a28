package models

// Lead is a submitted quote request. Rows are insert-only from the
// intake form; status and later fields are mutated by back-office
// processes. FormNumber is the human-readable reference shown to the
// submitter, never a lookup key — the row id is the true identity.
type Lead struct {
	BaseModel
	FirstName   string `gorm:"column:first_name" json:"firstName"`
	LastName    string `gorm:"column:last_name" json:"lastName"`
	Phone       string `gorm:"column:phone" json:"phone"`
	Email       string `gorm:"column:email" json:"email,omitempty"`
	Year        string `gorm:"column:year" json:"year"`
	Make        string `gorm:"column:make" json:"make"`
	Model       string `gorm:"column:model" json:"model"`
	Condition   string `gorm:"column:condition" json:"condition"`
	TitleStatus string `gorm:"column:title_status" json:"titleStatus"`
	Address     string `gorm:"column:address" json:"address"`
	Message     string `gorm:"column:message" json:"message,omitempty"`
	FormNumber  string `gorm:"column:form_number" json:"formNumber"`
	Status      string `gorm:"column:status" json:"status"`
}

// TableName pins the table name used by the original store.
func (Lead) TableName() string { return "leads" }

// Receipt is the read-only projection handed to the receipt renderer.
type Receipt struct {
	FormNumber  string `json:"formNumber"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Year        string `json:"year"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Condition   string `json:"condition"`
	TitleStatus string `json:"titleStatus"`
	Status      string `json:"status"`
}

// ToReceipt projects the lead onto the receipt contract.
func (l Lead) ToReceipt() Receipt {
	return Receipt{
		FormNumber:  l.FormNumber,
		FirstName:   l.FirstName,
		LastName:    l.LastName,
		Phone:       l.Phone,
		Year:        l.Year,
		Make:        l.Make,
		Model:       l.Model,
		Condition:   l.Condition,
		TitleStatus: l.TitleStatus,
		Status:      l.Status,
	}
}
