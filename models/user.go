package models

// UserListPartition is the fixed partition key for allow-list entries.
const UserListPartition = "User"

// UserRecord is an allow-list entry. Created once at registration and
// never updated by this service; blocking a user is an administrative
// change made directly on the table.
type UserRecord struct {
	List      string `json:"list" dynamodbav:"list"`
	Username  string `json:"username" dynamodbav:"username"`
	IsBlocked bool   `json:"is_blocked" dynamodbav:"is_blocked"`
}

// NewUserRecord creates an unblocked allow-list entry for username.
func NewUserRecord(username string) *UserRecord {
	return &UserRecord{
		List:      UserListPartition,
		Username:  username,
		IsBlocked: false,
	}
}
