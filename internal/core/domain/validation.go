package domain

import (
	"unicode"
	"unicode/utf8"
)

// Сообщения валидации комнат. Тексты зафиксированы контрактом API.
const (
	MsgRoomNameNotCapitalized = "O nome do cômodo deve começar com uma letra maiúscula."
	MsgRoomDimensionsInvalid  = "As dimensões do cômodo devem ser maiores que zero."
)

// ValidateRooms проверяет список комнат по бизнес-правилам.
// Правила применяются по порядку, побеждает первое нарушение:
//  1. имя каждой комнаты начинается с заглавной буквы;
//  2. ширина и длина каждой комнаты строго положительны.
func ValidateRooms(rooms []Room) error {
	for _, room := range rooms {
		if !startsWithUpper(room.Name) {
			return &RoomValidationError{Message: MsgRoomNameNotCapitalized}
		}
	}

	for _, room := range rooms {
		if room.Width <= 0 || room.Length <= 0 {
			return &RoomValidationError{Message: MsgRoomDimensionsInvalid}
		}
	}

	return nil
}

// startsWithUpper проверяет, что первый code point строки — заглавная буква.
func startsWithUpper(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return false
	}
	return unicode.IsUpper(first)
}
