package domain

// Customer is the cust reference row in the billing store, joined into
// account views for the tariff class (urjlw) and address columns. Owned by
// the upstream billing system; read-only here.
type Customer struct {
	Noreg  string `json:"noreg" gorm:"primaryKey;column:noreg"`
	Nosamw string `json:"nosamw" gorm:"column:nosamw"`
	Nama   string `json:"nama" gorm:"column:nama"`
	Alamat string `json:"alamat" gorm:"column:alamat"`
	Urjlw  string `json:"urjlw" gorm:"column:urjlw"`
}

func (Customer) TableName() string { return "cust" }
