// AngelaMos | 2026
// entity.go

package todo

type Todo struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Priority    int    `db:"priority"`
	Complete    bool   `db:"complete"`
	OwnerID     int64  `db:"owner_id"`
}
