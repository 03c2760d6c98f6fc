package domain

// MasterAccount maps an account number to its customer org metadata. The
// account number (nosamw) is the natural key; rows are maintained by hand
// through the CRUD endpoints, independent of the sync pipeline.
type MasterAccount struct {
	Nosamw  string `json:"nosamw" gorm:"primaryKey;column:nosamw"`
	Nama    string `json:"nama" gorm:"column:nama"`
	Kotama  string `json:"kotama" gorm:"column:kotama"`
	Satker  string `json:"satker" gorm:"column:satker"`
	IsAktif bool   `json:"is_aktif" gorm:"column:is_aktif"`
}

func (MasterAccount) TableName() string { return "master_tni" }

// Row is the list/export projection joined with cust for the tariff class.
type Row struct {
	Nosamw  string `json:"nosamw" gorm:"column:nosamw"`
	Nama    string `json:"nama" gorm:"column:nama"`
	Kotama  string `json:"kotama" gorm:"column:kotama"`
	Satker  string `json:"satker" gorm:"column:satker"`
	IsAktif bool   `json:"is_aktif" gorm:"column:is_aktif"`
	Urjlw   string `json:"urjlw" gorm:"column:urjlw"`
}

// SortableColumns is the allow-list for list sorting. Keys are the field
// names clients may send; values are the trusted column expressions.
var SortableColumns = map[string]string{
	"nosamw": "master_tni.nosamw",
	"nama":   "master_tni.nama",
	"kotama": "master_tni.kotama",
	"satker": "master_tni.satker",
}
