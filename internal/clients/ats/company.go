package ats

import "time"

type Company struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Website    string    `json:"website"`
	Phone      string    `json:"phone"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
}

type User struct {
	ID        int    `json:"id"`
	CompanyID int    `json:"companyId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}
