package usecasecontract

type IValidator interface {
	ValidateUsername(username string) error
	ValidateDirection(direction string) error
}
