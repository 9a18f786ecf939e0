package model

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// PostalCode is the campaign's partition key. Build it with NewPostalCode.
type PostalCode string

func NewPostalCode(raw string) (PostalCode, error) {
	if err := validate.Var(raw, "required"); err != nil {
		return "", err
	}
	return PostalCode(raw), nil
}

func (p PostalCode) String() string {
	return string(p)
}

type PostalCodeRecord struct {
	PostalCode PostalCode `json:"postal_code" dynamodbav:"postal_code" gorm:"primary_key;type:varchar(191)"`
	VisitCount int64      `json:"visit_count" dynamodbav:"visit_count" gorm:"not null;default:0"`
}
