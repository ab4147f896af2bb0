package directory

// Record describes one person in the remote directory.
type Record struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Company Company `json:"company"`
}

// Company holds the employer fields Rolodex cares about.
type Company struct {
	Name string `json:"name"`
}
