package domain

// Record is one denormalized billing row per account per period in the
// coklit store. Created in bulk by the sync pipeline; afterwards only the
// working meter/consumption fields and the first three band charges change.
// The *_ori columns are immutable snapshots of the source reading taken at
// sync time.
type Record struct {
	ID       int64   `json:"-" gorm:"primaryKey;column:id"`
	Pdam     string  `json:"pdam" gorm:"column:pdam"`
	Matra    string  `json:"matra" gorm:"column:matra"`
	Satker   string  `json:"satker" gorm:"column:satker"`
	Nosamw   string  `json:"nosamw" gorm:"column:nosamw"`
	Nama     string  `json:"nama" gorm:"column:nama"`
	Alamat   string  `json:"alamat" gorm:"column:alamat"`
	Periode  string  `json:"periode" gorm:"column:periode"`
	MetL     float64 `json:"met_l" gorm:"column:met_l"`
	MetLOri  float64 `json:"met_l_ori" gorm:"column:met_l_ori"`
	MetK     float64 `json:"met_k" gorm:"column:met_k"`
	MetKOri  float64 `json:"met_k_ori" gorm:"column:met_k_ori"`
	Pakai    float64 `json:"pakai" gorm:"column:pakai"`
	PakaiOri float64 `json:"pakai_ori" gorm:"column:pakai_ori"`
	Rata2    float64 `json:"rata2" gorm:"column:rata2"`
	Rata2Ori float64 `json:"rata2_ori" gorm:"column:rata2_ori"`
	Dnmet    float64 `json:"dnmet" gorm:"column:dnmet"`
	R1       float64 `json:"r1" gorm:"column:r1"`
	R2       float64 `json:"r2" gorm:"column:r2"`
	R3       float64 `json:"r3" gorm:"column:r3"`
	R4       float64 `json:"r4" gorm:"column:r4"`
	T1       float64 `json:"t1" gorm:"column:t1"`
	T2       float64 `json:"t2" gorm:"column:t2"`
	T3       float64 `json:"t3" gorm:"column:t3"`
	T4       float64 `json:"t4" gorm:"column:t4"`
	Denda    float64 `json:"denda" gorm:"column:denda"`
	AngSb    float64 `json:"ang_sb" gorm:"column:ang_sb"`
	JasaSb   float64 `json:"jasa_sb" gorm:"column:jasa_sb"`
}

func (Record) TableName() string { return "rekening_tni" }

// RawReading is the source-of-truth row in the billing store, owned by the
// upstream ingestion process. Read-only here.
type RawReading struct {
	Nosamw  string  `json:"nosamw" gorm:"primaryKey;column:nosamw"`
	Alamat  string  `json:"alamat" gorm:"column:alamat"`
	Periode string  `json:"periode" gorm:"column:periode"`
	MetL    float64 `json:"met_l" gorm:"column:met_l"`
	MetK    float64 `json:"met_k" gorm:"column:met_k"`
	Pakai   float64 `json:"pakai" gorm:"column:pakai"`
	Rata2   float64 `json:"rata2" gorm:"column:rata2"`
	Dnmet   float64 `json:"dnmet" gorm:"column:dnmet"`
	R1      float64 `json:"r1" gorm:"column:r1"`
	R2      float64 `json:"r2" gorm:"column:r2"`
	R3      float64 `json:"r3" gorm:"column:r3"`
	R4      float64 `json:"r4" gorm:"column:r4"`
	T1      float64 `json:"t1" gorm:"column:t1"`
	T2      float64 `json:"t2" gorm:"column:t2"`
	T3      float64 `json:"t3" gorm:"column:t3"`
	T4      float64 `json:"t4" gorm:"column:t4"`
	Denda   float64 `json:"denda" gorm:"column:denda"`
	AngSb   float64 `json:"ang_sb" gorm:"column:ang_sb"`
	JasaSb  float64 `json:"jasa_sb" gorm:"column:jasa_sb"`
	Statrek string  `json:"statrek" gorm:"column:statrek"`
}

func (RawReading) TableName() string { return "rekair" }

// SyncLog marks a period as synchronized. The periode primary key is the
// concurrency guard: two syncs racing on one period cannot both insert.
type SyncLog struct {
	Periode string `json:"periode" gorm:"primaryKey;column:periode"`
}

func (SyncLog) TableName() string { return "sync_log" }

// Response is a Record with its opaque id; the raw integer key never
// reaches the client.
type Response struct {
	ID string `json:"id"`
	Record
}

// SortableColumns is the allow-list for list sorting.
var SortableColumns = map[string]string{
	"nosamw":  "nosamw",
	"nama":    "nama",
	"satker":  "satker",
	"periode": "periode",
	"pakai":   "pakai",
}
