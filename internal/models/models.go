package models

import (
	"time"
)

type Product struct {
	PID        int     `gorm:"column:pid;primaryKey;autoIncrement:false" json:"pid"`
	Name       string  `gorm:"not null"                                  json:"name"`
	Category   string  `json:"category"`
	Price      float64 `gorm:"not null"                                  json:"price"`
	StockCount int     `gorm:"column:stock_count;not null"               json:"stock_count"`
	Descr      string  `gorm:"column:descr"                              json:"descr"`
}

func (Product) TableName() string { return "products" }

type User struct {
	UID          int    `gorm:"column:uid;primaryKey;autoIncrement:false" json:"uid"`
	PasswordHash string `gorm:"column:pwd;not null"                       json:"-"`
	Role         string `gorm:"not null"                                  json:"role"`
}

func (User) TableName() string { return "users" }

type Customer struct {
	CID   int    `gorm:"column:cid;primaryKey;autoIncrement:false" json:"cid"`
	Name  string `gorm:"not null"                                  json:"name"`
	Email string `gorm:"uniqueIndex;not null"                      json:"email"`
}

func (Customer) TableName() string { return "customers" }

type Session struct {
	CID       int        `gorm:"column:cid;primaryKey;autoIncrement:false"        json:"cid"`
	SessionNo int        `gorm:"column:session_no;primaryKey;autoIncrement:false" json:"session_no"`
	StartTime time.Time  `gorm:"not null"                                         json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}

func (Session) TableName() string { return "sessions" }

// CartItem holds the customer's cross-session quantity for a product.
// The unique index on (cid, pid) is what keeps the ledger consolidated:
// writes upsert against it instead of stacking per-session rows.
type CartItem struct {
	ID        uint `gorm:"primaryKey"                                    json:"id"`
	CID       int  `gorm:"column:cid;uniqueIndex:idx_cart_cid_pid;not null" json:"cid"`
	SessionNo int  `gorm:"column:session_no;not null"                    json:"session_no"`
	PID       int  `gorm:"column:pid;uniqueIndex:idx_cart_cid_pid;not null" json:"pid"`
	Qty       int  `gorm:"not null;check:qty>0"                          json:"qty"`
}

func (CartItem) TableName() string { return "cart" }

type Order struct {
	Ono             int       `gorm:"column:ono;primaryKey;autoIncrement:false" json:"ono"`
	CID             int       `gorm:"column:cid;index;not null"                 json:"cid"`
	SessionNo       int       `gorm:"column:session_no;not null"                json:"session_no"`
	ODate           time.Time `gorm:"column:odate;not null"                     json:"odate"`
	ShippingAddress string    `json:"shipping_address"`
}

func (Order) TableName() string { return "orders" }

// OrderLine carries the committed quantity and a price snapshot taken at
// checkout; later price changes never touch historical orders.
type OrderLine struct {
	Ono    int     `gorm:"column:ono;primaryKey;autoIncrement:false"     json:"ono"`
	LineNo int     `gorm:"column:line_no;primaryKey;autoIncrement:false" json:"line_no"`
	PID    int     `gorm:"column:pid;not null"                           json:"pid"`
	Qty    int     `gorm:"not null"                                      json:"qty"`
	UPrice float64 `gorm:"column:uprice;not null"                        json:"uprice"`
}

func (OrderLine) TableName() string { return "orderlines" }

type SearchRecord struct {
	ID        uint      `gorm:"primaryKey"                 json:"id"`
	CID       int       `gorm:"column:cid;index;not null"  json:"cid"`
	SessionNo int       `gorm:"column:session_no;not null" json:"session_no"`
	TS        time.Time `gorm:"column:ts;not null"         json:"ts"`
	Query     string    `gorm:"column:query"               json:"query"`
}

func (SearchRecord) TableName() string { return "searches" }

type ProductView struct {
	ID        uint      `gorm:"primaryKey"                 json:"id"`
	CID       int       `gorm:"column:cid;index;not null"  json:"cid"`
	SessionNo int       `gorm:"column:session_no;not null" json:"session_no"`
	TS        time.Time `gorm:"column:ts;not null"         json:"ts"`
	PID       int       `gorm:"column:pid;index;not null"  json:"pid"`
}

func (ProductView) TableName() string { return "viewed_products" }
