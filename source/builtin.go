package source

var builtin = List{
	"123456", "password", "123456789", "12345678", "12345", "qwerty", "abc123", "password1",
	"1234567", "111111", "123123", "admin", "letmein", "welcome", "monkey", "dragon",
	"1234567890", "iloveyou", "princess", "sunshine", "football", "baseball", "master",
	"shadow", "superman", "trustno1", "qwerty123", "passw0rd", "admin123", "root", "toor",
	"changeme", "default", "guest", "test", "test123", "demo", "demo123", "secret",
	"login", "hello", "freedom", "whatever", "qazwsx", "starwars", "michael", "jennifer",
	"password123", "Password1", "Password123", "P@ssw0rd", "letmein123", "welcome1",
	"administrator", "summer2024", "winter2024", "spring2024", "autumn2024", "company123",
}

// Builtin is a short list of very common passwords, appended to wordlists to widen coverage
func Builtin() List {
	out := make(List, len(builtin))
	copy(out, builtin)
	return out
}
