package session

// AuthSession is the single locally persisted authentication record.
// At most one row exists at a time; saving replaces any prior row.
// Timestamps are epoch milliseconds; a nil ExpiresAt never expires.
type AuthSession struct {
	Token     string  `db:"token" json:"token"`
	UserID    *string `db:"user_id" json:"user_id,omitempty"`
	UserEmail *string `db:"user_email" json:"user_email,omitempty"`
	UserName  *string `db:"user_name" json:"user_name,omitempty"`
	ExpiresAt *int64  `db:"expires_at" json:"expires_at,omitempty"`
	CreatedAt int64   `db:"created_at" json:"created_at"`
}
