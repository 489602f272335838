package model

// TeacherCredential учётная запись учителя из файла teachers.json
type TeacherCredential struct {
	Username string `json:"username"`
	Password string `json:"password"` // хранится открытым текстом
}
