package domain

// District — зарегистрированный район с ценой за квадратный метр.
// Каталог районов является источником истины для UnitValue.
type District struct {
	Name      string
	UnitValue float64 // цена за м², всегда > 0
}

// Room — прямоугольная комната внутри объекта недвижимости.
type Room struct {
	Name   string
	Width  float64
	Length float64
}

// Area возвращает площадь комнаты.
func (r Room) Area() float64 {
	return r.Width * r.Length
}

// Property — объект недвижимости: набор комнат в одном районе.
// ID генерируется сервером при вставке; после вставки объект не изменяется.
type Property struct {
	ID           string
	Name         string
	DistrictName string // ссылка на район по имени, разрешается через каталог
	Rooms        []Room
}

// TotalArea возвращает суммарную площадь всех комнат.
func (p Property) TotalArea() float64 {
	var total float64
	for _, room := range p.Rooms {
		total += room.Area()
	}
	return total
}

// LargestRoom возвращает комнату с максимальной площадью.
// При равных площадях побеждает первая по порядку хранения.
func (p Property) LargestRoom() Room {
	var largest Room
	for i, room := range p.Rooms {
		if i == 0 || room.Area() > largest.Area() {
			largest = room
		}
	}
	return largest
}

// RoomAreas возвращает карту "имя комнаты -> площадь".
// Если имена комнат дублируются, в карте остается последнее значение.
func (p Property) RoomAreas() map[string]float64 {
	areas := make(map[string]float64, len(p.Rooms))
	for _, room := range p.Rooms {
		areas[room.Name] = room.Area()
	}
	return areas
}

// Price возвращает оценочную стоимость объекта по актуальной цене района.
func (p Property) Price(unitValue float64) float64 {
	return p.TotalArea() * unitValue
}
