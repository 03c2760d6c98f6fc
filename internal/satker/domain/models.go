package domain

// Satker is an org unit the billed accounts belong to. The integer id never
// leaves the backend raw; responses carry the encoded form.
type Satker struct {
	ID   int64  `json:"-" gorm:"primaryKey;column:id"`
	Nama string `json:"nama" gorm:"column:nama"`
}

func (Satker) TableName() string { return "satker" }

// Response is the client-facing shape with the opaque id.
type Response struct {
	ID   string `json:"id"`
	Nama string `json:"nama"`
}
