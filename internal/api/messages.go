package api

import "time"

// Person is the wire representation of a contact.
type Person struct {
	Id          string     `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	LocalImage  *string    `json:"local_image,omitempty"`
	RemoteImage *string    `json:"remote_image,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	ApiKey string `json:"api_key"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type ListPeopleRequest struct{}

type ListPeopleResponse struct {
	People []*Person `json:"people"`
}

type CountPeopleRequest struct{}

type CountPeopleResponse struct {
	Count int64 `json:"count"`
}

type GetPersonRequest struct {
	Id string `json:"id"`
}

type GetPersonResponse struct {
	Person *Person `json:"person"`
}

type PostPersonRequest struct {
	Person *Person `json:"person"`
}

type PostPersonResponse struct {
	Person *Person `json:"person"`
}

type PutPersonRequest struct {
	Person *Person `json:"person"`
}

type PutPersonResponse struct {
	Person *Person `json:"person"`
}

type DeletePersonRequest struct {
	Id string `json:"id"`
}

type DeletePersonResponse struct {
	Deleted bool `json:"deleted"`
}

type CreateImageUploadRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

type CreateImageUploadResponse struct {
	Key string `json:"key"`
	Url string `json:"url"`
}

type CompleteImageUploadRequest struct {
	Key string `json:"key"`
}

type CompleteImageUploadResponse struct {
	RemoteImage string `json:"remote_image"`
}

type GetImageUrlRequest struct {
	Key string `json:"key"`
}

type GetImageUrlResponse struct {
	Url         string `json:"url"`
	ContentType string `json:"content_type"`
}

type DeleteImageRequest struct {
	Key string `json:"key"`
}

type DeleteImageResponse struct {
	Deleted bool `json:"deleted"`
}
