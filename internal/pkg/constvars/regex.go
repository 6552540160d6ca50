package constvars

const (
	RegexContainAtLeastOneSpecialChar = `[!@#\$%\^&\*\(\)_\+\-=\[\]\{\};':"\\|,.<>\/?]`
	RegexContainAtLeastOneUppercase   = `[A-Z]`
	RegexEmail                        = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`
)
