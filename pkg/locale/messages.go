package locale

// Message keys shared by the pipeline. The validation engine and the
// completion router look messages up by these names.
const (
	MsgError          = "error"
	MsgThanks         = "thanks"
	MsgReply          = "reply"
	MsgTryAgain       = "tryAgain"
	MsgLoading        = "loadingMessage"
	MsgEmailNotExists = "emailNotExists"
	MsgPhoneInvalid   = "phoneInvalid"

	MsgNameRequired  = "nameRequired"
	MsgNameMinLength = "nameMinLength"
	MsgNameMaxLength = "nameMaxLength"
	MsgNameInvalid   = "nameInvalid"
	MsgPhoneRequired = "phoneRequired"
	MsgEmailRequired = "emailRequired"
	MsgEmailInvalid  = "emailInvalid"
	MsgTextMinLength = "textMinLength"
	MsgTextMaxLength = "textMaxLength"
	MsgFieldRequired = "fieldRequired"
)

var messages = map[string]Bundle{
	"uk": {
		MsgError:          "Помилка",
		MsgThanks:         "Дякуємо!",
		MsgReply:          "Ми зв'яжемося з вами найближчим часом",
		MsgTryAgain:       "Щось пішло не так. Спробуйте ще раз",
		MsgLoading:        "Надсилаємо...",
		MsgEmailNotExists: "Вкажіть дійсну електронну пошту",
		MsgPhoneInvalid:   "Номер телефону недійсний!",
		MsgNameRequired:   "Вкажіть ім'я",
		MsgNameMinLength:  "Поле має містити щонайменше 2 символи",
		MsgNameMaxLength:  "Поле має містити щонайбільше 30 символів",
		MsgNameInvalid:    "Ім'я недійсне",
		MsgPhoneRequired:  "Вкажіть номер телефону",
		MsgEmailRequired:  "Вкажіть електронну пошту",
		MsgEmailInvalid:   "Електронна пошта недійсна!",
		MsgTextMinLength:  "Поле має містити щонайменше 3 символи",
		MsgTextMaxLength:  "Поле має містити щонайбільше 100 символів",
		MsgFieldRequired:  "Поле обов'язкове",
	},
	"pl": {
		MsgError:          "Błąd",
		MsgThanks:         "Dziękujemy!",
		MsgReply:          "Skontaktujemy się z Tobą wkrótce",
		MsgTryAgain:       "Coś poszło nie tak. Spróbuj ponownie",
		MsgLoading:        "Wysyłanie...",
		MsgEmailNotExists: "Podaj prawidłowy adres e-mail",
		MsgPhoneInvalid:   "Numer telefonu jest nieprawidłowy!",
		MsgNameRequired:   "Imię jest wymagane",
		MsgNameMinLength:  "Pole musi zawierać co najmniej 2 znaki",
		MsgNameMaxLength:  "Pole może zawierać maksymalnie 30 znaków",
		MsgNameInvalid:    "Imię jest nieprawidłowe",
		MsgPhoneRequired:  "Numer telefonu jest wymagany",
		MsgEmailRequired:  "E-mail jest wymagany",
		MsgEmailInvalid:   "E-mail jest nieprawidłowy!",
		MsgTextMinLength:  "Pole musi zawierać co najmniej 3 znaki",
		MsgTextMaxLength:  "Pole może zawierać maksymalnie 100 znaków",
		MsgFieldRequired:  "Pole jest wymagane",
	},
	"en": {
		MsgError:          "Error",
		MsgThanks:         "Thank you!",
		MsgReply:          "We will contact you shortly",
		MsgTryAgain:       "Something went wrong. Please try again",
		MsgLoading:        "Sending...",
		MsgEmailNotExists: "Please provide a valid email address",
		MsgPhoneInvalid:   "Phone number is invalid!",
		MsgNameRequired:   "Name is required",
		MsgNameMinLength:  "The field must contain a minimum of 2 characters",
		MsgNameMaxLength:  "The field must contain a maximum of 30 characters",
		MsgNameInvalid:    "Name is invalid",
		MsgPhoneRequired:  "Phone number is required",
		MsgEmailRequired:  "Email is required",
		MsgEmailInvalid:   "Email is invalid!",
		MsgTextMinLength:  "The field must contain a minimum of 3 characters",
		MsgTextMaxLength:  "The field must contain a maximum of 100 characters",
		MsgFieldRequired:  "The field is required",
	},
	"ro": {
		MsgError:          "Eroare",
		MsgThanks:         "Mulțumim!",
		MsgReply:          "Vă vom contacta în curând",
		MsgTryAgain:       "Ceva nu a mers bine. Încercați din nou",
		MsgLoading:        "Se trimite...",
		MsgEmailNotExists: "Introduceți o adresă de e-mail validă",
		MsgPhoneInvalid:   "Numărul de telefon este invalid!",
		MsgNameRequired:   "Numele este obligatoriu",
		MsgNameMinLength:  "Câmpul trebuie să conțină minimum 2 caractere",
		MsgNameMaxLength:  "Câmpul trebuie să conțină maximum 30 de caractere",
		MsgNameInvalid:    "Numele este invalid",
		MsgPhoneRequired:  "Numărul de telefon este obligatoriu",
		MsgEmailRequired:  "E-mailul este obligatoriu",
		MsgEmailInvalid:   "E-mailul este invalid!",
		MsgTextMinLength:  "Câmpul trebuie să conțină minimum 3 caractere",
		MsgTextMaxLength:  "Câmpul trebuie să conțină maximum 100 de caractere",
		MsgFieldRequired:  "Câmpul este obligatoriu",
	},
	"es": {
		MsgError:          "Error",
		MsgThanks:         "¡Gracias!",
		MsgReply:          "Nos pondremos en contacto contigo pronto",
		MsgTryAgain:       "Algo salió mal. Inténtalo de nuevo",
		MsgLoading:        "Enviando...",
		MsgEmailNotExists: "Introduce un correo electrónico válido",
		MsgPhoneInvalid:   "¡El número de teléfono no es válido!",
		MsgNameRequired:   "El nombre es obligatorio",
		MsgNameMinLength:  "El campo debe contener un mínimo de 2 caracteres",
		MsgNameMaxLength:  "El campo debe contener un máximo de 30 caracteres",
		MsgNameInvalid:    "El nombre no es válido",
		MsgPhoneRequired:  "El número de teléfono es obligatorio",
		MsgEmailRequired:  "El correo electrónico es obligatorio",
		MsgEmailInvalid:   "¡El correo electrónico no es válido!",
		MsgTextMinLength:  "El campo debe contener un mínimo de 3 caracteres",
		MsgTextMaxLength:  "El campo debe contener un máximo de 100 caracteres",
		MsgFieldRequired:  "El campo es obligatorio",
	},
	"tr": {
		MsgError:          "Hata",
		MsgThanks:         "Teşekkürler!",
		MsgReply:          "En kısa sürede sizinle iletişime geçeceğiz",
		MsgTryAgain:       "Bir şeyler ters gitti. Lütfen tekrar deneyin",
		MsgLoading:        "Gönderiliyor...",
		MsgEmailNotExists: "Geçerli bir e-posta adresi girin",
		MsgPhoneInvalid:   "Telefon numarası geçersiz!",
		MsgNameRequired:   "İsim gereklidir",
		MsgNameMinLength:  "Alan en az 2 karakter içermelidir",
		MsgNameMaxLength:  "Alan en fazla 30 karakter içermelidir",
		MsgNameInvalid:    "İsim geçersiz",
		MsgPhoneRequired:  "Telefon numarası gereklidir",
		MsgEmailRequired:  "E-posta gereklidir",
		MsgEmailInvalid:   "E-posta geçersiz!",
		MsgTextMinLength:  "Alan en az 3 karakter içermelidir",
		MsgTextMaxLength:  "Alan en fazla 100 karakter içermelidir",
		MsgFieldRequired:  "Alan gereklidir",
	},
}
