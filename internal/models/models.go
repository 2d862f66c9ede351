package models

import "time"

type Message struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Subject   string    `db:"subject"`
	Body      string    `db:"body"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// Message status values.
const (
	StatusUnread = "Unread"
	StatusRead   = "Read"
)

type Donation struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Amount    float64   `db:"amount"`
	Method    string    `db:"method"`
	Ref       string    `db:"ref"`
	Notes     string    `db:"notes"`
	Date      string    `db:"date"`
	CreatedAt time.Time `db:"created_at"`
}

type Testimonial struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Profession string    `db:"profession"`
	Body       string    `db:"body"`
	ImagePath  *string   `db:"image_path"`
	CreatedAt  time.Time `db:"created_at"`
}

// SiteContent is a singleton; the schema pins id to 1.
type SiteContent struct {
	ID         int       `db:"id"`
	Mission    string    `db:"mission"`
	About      string    `db:"about"`
	Address    string    `db:"address"`
	Hours      string    `db:"hours"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	Facebook   string    `db:"facebook"`
	DonateLink string    `db:"donate_link"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type AdminAccount struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type SiteVisit struct {
	ID        string    `db:"id"`
	IPAddress *string   `db:"ip_address"`
	UserAgent *string   `db:"user_agent"`
	Path      *string   `db:"path"`
	Referrer  *string   `db:"referrer"`
	CreatedAt time.Time `db:"created_at"`
}

type ServerMetricSample struct {
	ID                string    `db:"id"`
	CapturedAt        time.Time `db:"captured_at"`
	ProcessRSSBytes   int64     `db:"process_rss_bytes"`
	SystemMemoryTotal int64     `db:"system_memory_total_bytes"`
	SystemMemoryUsed  int64     `db:"system_memory_used_bytes"`
	DiskTotalBytes    int64     `db:"disk_total_bytes"`
	DiskUsedBytes     int64     `db:"disk_used_bytes"`
	ProcessCpuLoad    float64   `db:"process_cpu_load"`
	SystemCpuLoad     float64   `db:"system_cpu_load"`
}
