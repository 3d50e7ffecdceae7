package models

// 프로젝트 제출 레코드, upload 테이블의 한 행
type UploadRecord struct {
	Email              string  `json:"email" example:"a@x.com"`
	Password           string  `json:"password" example:"p"`
	Address            string  `json:"address" example:"123 St"`
	ProjectTitle       string  `json:"projectTitle" example:"T"`
	ProjectDescription *string `json:"projectDescription" example:"A short description"`
	ProjectExperience  *string `json:"projectExperience" example:"2 years"`
	ShareLink          *string `json:"shareLink" example:"https://example.com/share"`
}
