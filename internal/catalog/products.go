package catalog

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var seedCategories = []Category{
	{ID: "all", Icon: "🍽️"},
	{ID: "canapes", Icon: "🥪"},
	{ID: "salads", Icon: "🥗"},
	{ID: "hot", Icon: "🍖"},
	{ID: "desserts", Icon: "🍰"},
	{ID: "drinks", Icon: "🥂"},
}

var seedProducts = []Product{
	{
		ID:          "canape-salmon",
		Name:        map[string]string{"ka": "ორაგულის კანაპე", "en": "Salmon Canapé", "ru": "Канапе с лососем"},
		Description: map[string]string{"ka": "ნაზი ორაგული კრემ-ყველით ბრიოშის პურზე", "en": "Delicate salmon with cream cheese on brioche", "ru": "Нежный лосось со сливочным сыром на бриоши"},
		Category:    "canapes", Tags: []string{"popular"}, Price: price("3.5"), Unit: UnitPiece, Popular: true,
		Gradient: "linear-gradient(135deg, #f6d365 0%, #fda085 100%)",
	},
	{
		ID:          "canape-prosciutto",
		Name:        map[string]string{"ka": "პროშუტო და ნესვი", "en": "Prosciutto & Melon", "ru": "Прошутто с дыней"},
		Description: map[string]string{"ka": "იტალიური პროშუტო ტკბილ ნესვთან ერთად", "en": "Italian prosciutto with sweet melon", "ru": "Итальянское прошутто со сладкой дыней"},
		Category:    "canapes", Tags: []string{"glutenFree"}, Price: price("4"), Unit: UnitPiece,
		Gradient: "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
	},
	{
		ID:          "canape-caprese",
		Name:        map[string]string{"ka": "კაპრეზე სამარსზე", "en": "Caprese Skewers", "ru": "Капрезе на шпажках"},
		Description: map[string]string{"ka": "მოცარელა, პომიდორი, ბაზილიკი ბალზამიკის სოუსით", "en": "Mozzarella, tomato, basil with balsamic glaze", "ru": "Моцарелла, томат, базилик с бальзамиком"},
		Category:    "canapes", Tags: []string{"vegan", "glutenFree"}, Price: price("3"), Unit: UnitPiece,
		Gradient: "linear-gradient(135deg, #a8edea 0%, #fed6e3 100%)",
	},
	{
		ID:          "canape-mushroom",
		Name:        map[string]string{"ka": "სოკოს ტარტალეტი", "en": "Mushroom Tartlet", "ru": "Тарталетка с грибами"},
		Description: map[string]string{"ka": "კრემისებრი სოკოს ტარტალეტი თაიმით", "en": "Creamy mushroom tartlet with thyme", "ru": "Сливочная тарталетка с грибами и тимьяном"},
		Category:    "canapes", Tags: []string{"vegan", "new"}, Price: price("3.5"), Unit: UnitPiece,
		Gradient: "linear-gradient(135deg, #d4a574 0%, #a0845c 100%)",
	},
	{
		ID:          "salad-caesar",
		Name:        map[string]string{"ka": "ცეზარის სალათი", "en": "Caesar Salad", "ru": "Салат Цезарь"},
		Description: map[string]string{"ka": "კლასიკური ცეზარი ქათმით, პარმეზანით და კრუტონებით", "en": "Classic Caesar with chicken, parmesan, and croutons", "ru": "Классический Цезарь с курицей, пармезаном и крутонами"},
		Category:    "salads", Tags: []string{"popular"}, Price: price("25"), Unit: UnitTray, Popular: true,
		Gradient: "linear-gradient(135deg, #96e6a1 0%, #d4fc79 100%)",
	},
	{
		ID:          "salad-greek",
		Name:        map[string]string{"ka": "ბერძნული სალათი", "en": "Greek Salad", "ru": "Греческий салат"},
		Description: map[string]string{"ka": "ახალი ბოსტნეული ფეტა ყველით და ზეითუნით", "en": "Fresh vegetables with feta cheese and olives", "ru": "Свежие овощи с фетой и оливками"},
		Category:    "salads", Tags: []string{"vegan", "glutenFree"}, Price: price("22"), Unit: UnitTray,
		Gradient: "linear-gradient(135deg, #84fab0 0%, #8fd3f4 100%)",
	},
	{
		ID:          "salad-seasonal",
		Name:        map[string]string{"ka": "სეზონური სალათი", "en": "Seasonal Salad", "ru": "Сезонный салат"},
		Description: map[string]string{"ka": "სეზონური ბოსტნეული სპეციალური სოუსით", "en": "Seasonal vegetables with special dressing", "ru": "Сезонные овощи со специальной заправкой"},
		Category:    "salads", Tags: []string{"vegan", "new"}, Price: price("20"), Unit: UnitTray,
		Gradient: "linear-gradient(135deg, #ffecd2 0%, #fcb69f 100%)",
	},
	{
		ID:          "hot-chicken",
		Name:        map[string]string{"ka": "შემწვარი ქათამი", "en": "Grilled Chicken", "ru": "Курица гриль"},
		Description: map[string]string{"ka": "სანელებლებით შემწვარი ქათმის ფილე", "en": "Herb-grilled chicken fillet", "ru": "Филе курицы на гриле с травами"},
		Category:    "hot", Tags: []string{"popular", "glutenFree"}, Price: price("35"), Unit: UnitTray, Popular: true,
		Gradient: "linear-gradient(135deg, #fbc2eb 0%, #a6c1ee 100%)",
	},
	{
		ID:          "hot-beef",
		Name:        map[string]string{"ka": "ხბოს მედალიონები", "en": "Beef Medallions", "ru": "Медальоны из говядины"},
		Description: map[string]string{"ka": "ნაზი ხბოს მედალიონები სოუსთან ერთად", "en": "Tender beef medallions with sauce", "ru": "Нежные медальоны из говядины с соусом"},
		Category:    "hot", Tags: []string{"popular"}, Price: price("45"), Unit: UnitTray,
		Gradient: "linear-gradient(135deg, #c471f5 0%, #fa71cd 100%)",
	},
	{
		ID:          "hot-veggie",
		Name:        map[string]string{"ka": "ბოსტნეულის რაგუ", "en": "Vegetable Stir-Fry", "ru": "Овощное рагу"},
		Description: map[string]string{"ka": "სეზონური ბოსტნეული აზიურ სოუსში", "en": "Seasonal vegetables in Asian sauce", "ru": "Сезонные овощи в азиатском соусе"},
		Category:    "hot", Tags: []string{"vegan", "spicy"}, Price: price("28"), Unit: UnitTray,
		Gradient: "linear-gradient(135deg, #fddb92 0%, #d1fdff 100%)",
	},
	{
		ID:          "hot-salmon",
		Name:        map[string]string{"ka": "გამომცხვარი ორაგული", "en": "Baked Salmon", "ru": "Запечённый лосось"},
		Description: map[string]string{"ka": "ორაგული ლიმონისა და ბალახეულის ქერქით", "en": "Salmon with lemon and herb crust", "ru": "Лосось с лимонной и травяной корочкой"},
		Category:    "hot", Tags: []string{"glutenFree", "new"}, Price: price("40"), Unit: UnitTray,
		Gradient: "linear-gradient(135deg, #fa709a 0%, #fee140 100%)",
	},
	{
		ID:          "dessert-fruit",
		Name:        map[string]string{"ka": "ხილის ასორტი", "en": "Fruit Platter", "ru": "Фруктовая тарелка"},
		Description: map[string]string{"ka": "სეზონური ხილის ლამაზი კომპოზიცია", "en": "Beautiful arrangement of seasonal fruits", "ru": "Красивая композиция из сезонных фруктов"},
		Category:    "desserts", Tags: []string{"vegan", "glutenFree", "popular"}, Price: price("30"), Unit: UnitTray, Popular: true,
		Gradient: "linear-gradient(135deg, #f6d365 0%, #fda085 100%)",
	},
	{
		ID:          "dessert-pastries",
		Name:        map[string]string{"ka": "მინი ნამცხვრები", "en": "Mini Pastries", "ru": "Мини пирожные"},
		Description: map[string]string{"ka": "ასორტი მინი ტორტები და ნამცხვრები", "en": "Assorted mini cakes and pastries", "ru": "Ассорти мини тортов и пирожных"},
		Category:    "desserts", Tags: []string{"popular"}, Price: price("2.5"), Unit: UnitPiece,
		Gradient: "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
	},
	{
		ID:          "dessert-mousse",
		Name:        map[string]string{"ka": "შოკოლადის მუსი", "en": "Chocolate Mousse", "ru": "Шоколадный мусс"},
		Description: map[string]string{"ka": "ბელგიური შოკოლადის ნაზი მუსი", "en": "Silky Belgian chocolate mousse", "ru": "Нежный мусс из бельгийского шоколада"},
		Category:    "desserts", Tags: []string{"glutenFree"}, Price: price("4"), Unit: UnitPiece,
		Gradient: "linear-gradient(135deg, #3c1053 0%, #ad5389 100%)",
	},
	{
		ID:          "drink-lemonade",
		Name:        map[string]string{"ka": "ლიმონათი", "en": "Fresh Lemonade", "ru": "Лимонад"},
		Description: map[string]string{"ka": "ახლად მომზადებული ლიმონათი პიტნით", "en": "Freshly made lemonade with mint", "ru": "Свежий лимонад с мятой"},
		Category:    "drinks", Tags: []string{"vegan"}, Price: price("8"), Unit: UnitLiter,
		Gradient: "linear-gradient(135deg, #f6d365 0%, #96e6a1 100%)",
	},
	{
		ID:          "drink-wine",
		Name:        map[string]string{"ka": "ქართული ღვინო", "en": "Georgian Wine", "ru": "Грузинское вино"},
		Description: map[string]string{"ka": "სელექცია ქართული წითელი ღვინო", "en": "Selection of Georgian red wine", "ru": "Подборка грузинского красного вина"},
		Category:    "drinks", Tags: []string{"popular"}, Price: price("35"), Unit: UnitLiter, Popular: true,
		Gradient: "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
	},
	{
		ID:          "drink-water",
		Name:        map[string]string{"ka": "მინერალური წყალი", "en": "Sparkling Water", "ru": "Минеральная вода"},
		Description: map[string]string{"ka": "ნაბეღლავი ან ბორჯომი", "en": "Nabeghlavi or Borjomi", "ru": "Набеглави или Боржоми"},
		Category:    "drinks", Tags: []string{}, Price: price("5"), Unit: UnitLiter,
		Gradient: "linear-gradient(135deg, #89f7fe 0%, #66a6ff 100%)",
	},
}
