package selection

import "github.com/osse101/IdleRates_Go/internal/domain"

// Patch is a partial update to a BoostSelection. Nil fields are left unchanged.
type Patch struct {
	Tool              *string  `json:"tool,omitempty"`
	T3Scrolls         *int     `json:"t3_scrolls,omitempty" validate:"omitnil,min=0,max=4"`
	T2Scrolls         *int     `json:"t2_scrolls,omitempty" validate:"omitnil,min=0,max=4"`
	T1Scrolls         *int     `json:"t1_scrolls,omitempty" validate:"omitnil,min=0,max=4"`
	SkillCape         *string  `json:"skill_cape,omitempty"`
	OutfitPieces      *int     `json:"outfit_pieces,omitempty" validate:"omitnil,min=0,max=4"`
	Consumable        *string  `json:"consumable,omitempty"`
	XPBoost           *bool    `json:"xp_boost,omitempty"`
	NegotiationPotion *bool    `json:"negotiation_potion,omitempty"`
	TrickeryPotion    *bool    `json:"trickery_potion,omitempty"`
	KnowledgePotion   *bool    `json:"knowledge_potion,omitempty"`
	GuardiansChisel   *bool    `json:"guardians_chisel,omitempty"`
	ForgeryPotion     *bool    `json:"forgery_potion,omitempty"`
	GuardiansTrowel   *bool    `json:"guardians_trowel,omitempty"`
	EventBoost        *bool    `json:"event_boost,omitempty"`
	EventBoostValue   *float64 `json:"event_boost_value,omitempty" validate:"omitnil,min=0,max=999"`
}

// IsEmpty reports whether the patch changes nothing
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// applyTo returns a copy of s with every non-nil patch field written over it
func (p Patch) applyTo(s domain.BoostSelection) domain.BoostSelection {
	setString(&s.Tool, p.Tool)
	setString(&s.SkillCape, p.SkillCape)
	setString(&s.Consumable, p.Consumable)

	setInt(&s.T3Scrolls, p.T3Scrolls)
	setInt(&s.T2Scrolls, p.T2Scrolls)
	setInt(&s.T1Scrolls, p.T1Scrolls)
	setInt(&s.OutfitPieces, p.OutfitPieces)

	setBool(&s.XPBoost, p.XPBoost)
	setBool(&s.NegotiationPotion, p.NegotiationPotion)
	setBool(&s.TrickeryPotion, p.TrickeryPotion)
	setBool(&s.KnowledgePotion, p.KnowledgePotion)
	setBool(&s.GuardiansChisel, p.GuardiansChisel)
	setBool(&s.ForgeryPotion, p.ForgeryPotion)
	setBool(&s.GuardiansTrowel, p.GuardiansTrowel)
	setBool(&s.EventBoost, p.EventBoost)

	if p.EventBoostValue != nil {
		s.EventBoostValue = *p.EventBoostValue
	}
	return s
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
