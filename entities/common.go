package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"<-:create;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ensureID assigns a fresh uuid when the caller left the primary key empty.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *User) BeforeCreate(_ *gorm.DB) error             { ensureID(&u.ID); return nil }
func (f *Follow) BeforeCreate(_ *gorm.DB) error           { ensureID(&f.ID); return nil }
func (t *Tag) BeforeCreate(_ *gorm.DB) error              { ensureID(&t.ID); return nil }
func (i *Ingredient) BeforeCreate(_ *gorm.DB) error       { ensureID(&i.ID); return nil }
func (r *Recipe) BeforeCreate(_ *gorm.DB) error           { ensureID(&r.ID); return nil }
func (a *IngredientAmount) BeforeCreate(_ *gorm.DB) error { ensureID(&a.ID); return nil }
func (f *Favourite) BeforeCreate(_ *gorm.DB) error        { ensureID(&f.ID); return nil }
func (s *ShoppingCart) BeforeCreate(_ *gorm.DB) error     { ensureID(&s.ID); return nil }
