package models

import "time"

// Customer is a person luggage is billed to.
type Customer struct {
	ID                   int64     `json:"id"`
	Fullname             string    `json:"fullname"`
	Email                string    `json:"email"`
	Address              string    `json:"address"`
	NextOfKin            string    `json:"next_of_kin"`
	NextOfKinPhoneNumber string    `json:"next_of_kin_phonenumber"`
	Created              time.Time `json:"created"`
	Updated              time.Time `json:"updated"`
}

func (c *Customer) Normalize() {
	c.Fullname = normalize(c.Fullname)
	c.Email = normalize(c.Email)
	c.Address = normalize(c.Address)
	c.NextOfKin = normalize(c.NextOfKin)
	c.NextOfKinPhoneNumber = normalize(c.NextOfKinPhoneNumber)
}

func (c Customer) Validate() error {
	return firstError(
		requireText("fullname", c.Fullname, 150),
		ValidateEmail("email", c.Email),
		requireText("address", c.Address, 100),
		requireText("next_of_kin", c.NextOfKin, 150),
		ValidatePhoneNumber("next_of_kin_phonenumber", c.NextOfKinPhoneNumber),
	)
}
