package sim

// ContactOutcome reports which rule handled a contact.
type ContactOutcome int

const (
	ContactIgnored ContactOutcome = iota
	ContactPlayerEnemy
	ContactBulletEnemy
	ContactBulletEnemyStale
	ContactBulletBonus
)

// String returns the outcome name.
func (o ContactOutcome) String() string {
	switch o {
	case ContactIgnored:
		return "ignored"
	case ContactPlayerEnemy:
		return "player_enemy"
	case ContactBulletEnemy:
		return "bullet_enemy"
	case ContactBulletEnemyStale:
		return "bullet_enemy_stale"
	case ContactBulletBonus:
		return "bullet_bonus"
	default:
		return "unknown"
	}
}

// Canonical orders a contact pair by category so the lower bit comes first.
func Canonical(a, b *Entity) (*Entity, *Entity) {
	if b.Category < a.Category {
		return b, a
	}
	return a, b
}

// Resolver applies the contact rules. Score and lives changes go through
// the callbacks so the caller can dispatch the resulting effects.
type Resolver struct {
	world   *World
	effects *EffectSystem
	topY    float64

	reward     int
	lifeReward int

	addScore   func(int)
	addLives   func(int)
	playerDown func()
}

// Resolve handles a contact between a and b in either order.
func (r *Resolver) Resolve(a, b *Entity) ContactOutcome {
	if a == nil || b == nil || a == b || a.Removed() || b.Removed() {
		return ContactIgnored
	}
	lo, hi := Canonical(a, b)
	switch {
	case lo.Category == CategoryPlayer && hi.Category == CategoryEnemy:
		r.effects.Explode(hi, nil)
		r.effects.Explode(lo, r.playerDown)
		return ContactPlayerEnemy

	case lo.Category == CategoryBullet && hi.Category == CategoryEnemy:
		r.world.Remove(lo)
		if hi.Pos.Y >= r.topY {
			return ContactBulletEnemyStale
		}
		r.effects.Explode(hi, nil)
		r.addScore(r.reward)
		return ContactBulletEnemy

	case lo.Category == CategoryBullet && hi.Category == CategoryBonus:
		r.world.Remove(lo)
		r.effects.Explode(hi, nil)
		r.addLives(r.lifeReward)
		return ContactBulletBonus
	}
	return ContactIgnored
}
