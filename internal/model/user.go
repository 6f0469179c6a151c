package model

import "time"

// User: пользователь, идентифицируется только по имени.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

// Friend: направленная связь дружбы. На одну дружбу приходится две строки (A→B и B→A).
type Friend struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	UserID   int64 `gorm:"not null;uniqueIndex:idx_friend_pair"`
	FriendID int64 `gorm:"not null;uniqueIndex:idx_friend_pair"`
}

// Identity: пользователь, от имени которого выполняется запрос (заголовок X-User).
type Identity struct {
	UserID   int64
	Username string
}
