package models

import "time"

type Doctor struct {
	ID             string    `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	ClinicName     string    `bson:"clinic_name" json:"clinic_name"`
	City           string    `bson:"city" json:"city"`
	Specialization string    `bson:"specialization" json:"specialization"`
	ShareableSlug  string    `bson:"shareable_slug" json:"shareable_slug"`
	ShareableLink  string    `bson:"shareable_link" json:"shareable_link"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
