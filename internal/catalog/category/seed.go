package category

// Seed holds the name/description pair of a predefined category.
type Seed struct {
	Name        string
	Description string
}

// defaultSeeds is inserted once, at startup, into an empty collection.
var defaultSeeds = []Seed{
	{"Живопись", "Картины, написанные маслом, акрилом и другими красками"},
	{"Графика", "Рисунки карандашом, тушью, пастелью"},
	{"Скульптура", "Трехмерные произведения искусства"},
	{"Фотография", "Художественная и документальная фотография"},
	{"Цифровое искусство", "Произведения, созданные с помощью компьютерных технологий"},
	{"Инсталляция", "Пространственные композиции из различных материалов"},
	{"Акварель", "Картины, написанные акварельными красками"},
	{"Портрет", "Изображения людей в различных техниках"},
	{"Пейзаж", "Изображения природы и городских видов"},
	{"Абстракция", "Беспредметное искусство, основанное на цвете и форме"},
	{"Граффити - Оформление фасадов", "Художественное оформление внешних стен зданий и сооружений"},
	{"Граффити - Интерьерный дизайн", "Художественное оформление внутренних помещений в стиле граффити"},
	{"Стикеры Telegram", "Разработка наборов стикеров для мессенджера Telegram"},
	{"Брендинг", "Разработка логотипов, фирменного стиля и брендбуков"},
}

// supplementalSeeds is the fixed set appended by POST /categories/add-new.
// Each entry is inserted only when no category with that name exists, so
// the operation is idempotent under repeated calls.
var supplementalSeeds = []Seed{
	{"Граффити - Оформление фасадов", "Художественное оформление внешних стен зданий и сооружений"},
	{"Граффити - Интерьерный дизайн", "Художественное оформление внутренних помещений в стиле граффити"},
	{"Стикеры Telegram", "Разработка наборов стикеров для мессенджера Telegram"},
	{"Брендинг", "Разработка логотипов, фирменного стиля и брендбуков"},
}
