package forms

import "time"

// DateLayout is the wire format of date-only fields such as date of birth
const DateLayout = "2006-01-02"

// SignupForm creates an account
type SignupForm struct {
	FirstName       string `json:"firstName" validate:"required,max=50,personname"`
	LastName        string `json:"lastName" validate:"required,max=50,personname"`
	Username        string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	DateOfBirth     string `json:"dateOfBirth" validate:"required,datetime=2006-01-02,adult"`
}

// LoginForm signs in with email and password
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordForm asks for a reset link
type ForgotPasswordForm struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordForm sets a new password with the token from the reset link
type ResetPasswordForm struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// ProfileForm edits the signed-in user's profile
type ProfileForm struct {
	FirstName    string `json:"firstName" validate:"required,max=50,personname"`
	LastName     string `json:"lastName" validate:"required,max=50,personname"`
	Username     string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Email        string `json:"email" validate:"required,email"`
	Bio          string `json:"bio" validate:"max=500"`
	ProfileImage string `json:"profileImage,omitempty"`
}

func (f *ProfileForm) sanitize(s sanitizer) {
	f.Bio = s.text(f.Bio)
}

// ProductForm creates or edits a listing; auctions need an end date in the future
type ProductForm struct {
	Name             string     `json:"name" validate:"required,min=2,max=100"`
	Description      string     `json:"description" validate:"required,max=2000"`
	Price            float64    `json:"price" validate:"gt=0"`
	Category         string     `json:"category" validate:"required"`
	Address          string     `json:"address" validate:"required,max=200"`
	Image            string     `json:"image,omitempty"`
	Images           []string   `json:"images,omitempty" validate:"max=10"`
	IsAuction        bool       `json:"is_auction"`
	AuctionStartDate *time.Time `json:"auction_start_date,omitempty"`
	AuctionEndDate   *time.Time `json:"auction_end_date,omitempty"`
}

func (f *ProductForm) sanitize(s sanitizer) {
	f.Description = s.text(f.Description)
}

// ProposalForm requests a mechanic proposal
type ProposalForm struct {
	Title       string  `json:"title" validate:"required,min=5,max=120"`
	Description string  `json:"description" validate:"required,min=20,max=2000"`
	CarMake     string  `json:"carMake" validate:"required,max=50"`
	CarModel    string  `json:"carModel" validate:"required,max=50"`
	CarYear     int     `json:"carYear" validate:"required,caryear"`
	Budget      float64 `json:"budget" validate:"gt=0"`
}

func (f *ProposalForm) sanitize(s sanitizer) {
	f.Description = s.text(f.Description)
}

// CheckoutForm buys a fixed-price product
type CheckoutForm struct {
	ProductID     string `json:"productId" validate:"required"`
	FullName      string `json:"fullName" validate:"required,max=100,personname"`
	Address       string `json:"address" validate:"required,max=200"`
	Phone         string `json:"phone" validate:"required,phone"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=card cash transfer"`
}

// ContactForm is a message to support
type ContactForm struct {
	Name    string `json:"name" validate:"required,max=100,personname"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=150"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

func (f *ContactForm) sanitize(s sanitizer) {
	f.Subject = s.text(f.Subject)
	f.Message = s.text(f.Message)
}

// QuestionForm asks a car-repair question
type QuestionForm struct {
	Title    string `json:"title" validate:"required,min=10,max=200"`
	Body     string `json:"body" validate:"required,min=20,max=5000"`
	Category string `json:"category" validate:"required"`
}

func (f *QuestionForm) sanitize(s sanitizer) {
	f.Title = s.text(f.Title)
	f.Body = s.text(f.Body)
}

// AnswerForm answers a question
type AnswerForm struct {
	Body string `json:"body" validate:"required,min=5,max=5000"`
}

func (f *AnswerForm) sanitize(s sanitizer) {
	f.Body = s.text(f.Body)
}
