package memory

import (
	"time"

	"backoffice/domain"
)

// Sample data the dashboard ships with. Ids and timestamps are fixed so the
// UI shows the same picture on every restart.

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func SampleGuests() []domain.Guest {
	return []domain.Guest{
		{
			ID:            "guest-1",
			Name:          "Олена Петренко",
			PhoneNumber:   "+380 67 123 4567",
			TotalOrders:   25,
			TotalSpend:    4350.00,
			LastOrderDate: datePtr(2024, time.January, 15),
			Segment:       "Office worker",
			CreatedAt:     date(2023, time.June, 15),
			FavoriteAddresses: domain.StringList{
				"вул. Хрещатик, 22 (Офіс)",
				"вул. Лесі Українки, 15, кв. 42 (Дім)",
			},
			AvgOrderValue:   floatPtr(174.00),
			DeliveryZone:    strPtr("Центр"),
			BehaviorPattern: strPtr("Обідній покупець"),
		},
		{
			ID:            "guest-2",
			Name:          "Андрій Коваленко",
			PhoneNumber:   "+380 95 987 6543",
			TotalOrders:   15,
			TotalSpend:    2780.50,
			LastOrderDate: datePtr(2024, time.January, 10),
			Segment:       "Student",
			CreatedAt:     date(2023, time.September, 20),
			FavoriteAddresses: domain.StringList{
				"вул. Володимирська, 60 (Гуртожиток)",
			},
			AvgOrderValue:   floatPtr(185.37),
			DeliveryZone:    strPtr("Печерськ"),
			BehaviorPattern: strPtr("Вечірній користувач"),
		},
		{
			ID:            "guest-3",
			Name:          "Марія Іваненко",
			PhoneNumber:   "+380 50 456 7890",
			TotalOrders:   35,
			TotalSpend:    6420.75,
			LastOrderDate: datePtr(2024, time.January, 18),
			Segment:       "Parent",
			CreatedAt:     date(2023, time.March, 10),
			FavoriteAddresses: domain.StringList{
				"вул. Оболонський проспект, 12, кв. 85 (Дім)",
				"вул. Героїв Дніпра, 32 (Офіс)",
			},
			AvgOrderValue:   floatPtr(183.45),
			DeliveryZone:    strPtr("Оболонь"),
			BehaviorPattern: strPtr("Сімейні замовлення"),
		},
		{
			ID:            "guest-4",
			Name:          "Дмитро Сидоренко",
			PhoneNumber:   "+380 66 234 5678",
			TotalOrders:   8,
			TotalSpend:    1250.00,
			LastOrderDate: datePtr(2023, time.December, 20),
			Segment:       "Night user",
			CreatedAt:     date(2023, time.November, 5),
			FavoriteAddresses: domain.StringList{
				"вул. Контрактова площа, 4, кв. 12 (Дім)",
			},
			AvgOrderValue:   floatPtr(156.25),
			DeliveryZone:    strPtr("Подол"),
			BehaviorPattern: strPtr("Нічний користувач"),
		},
	}
}

func SampleTriggers() []domain.MarketingTrigger {
	return []domain.MarketingTrigger{
		{
			ID:              "trigger-1",
			Name:            "Повернення неактивних клієнтів",
			TriggerType:     "No orders in 30 days",
			Conditions:      "Останнє замовлення > 30 днів",
			MessageTemplate: "Привіт! Сумуємо за тобою 😊 Спеціально для тебе знижка 15% на наступне замовлення!",
			Channel:         domain.ChannelPush,
			IsActive:        true,
			CreatedAt:       date(2024, time.January, 10),
			SentCount:       45,
			OpenRate:        68.50,
			ClickRate:       12.30,
			ConversionRate:  8.70,
		},
		{
			ID:              "trigger-2",
			Name:            "Преміум клієнти",
			TriggerType:     "High spender",
			Conditions:      "Загальна сума замовлень > ₴5000",
			MessageTemplate: "Дякуємо за вірність! Ваш персональний промокод на безкоштовну доставку: PREMIUM2024",
			Channel:         domain.ChannelSMS,
			IsActive:        true,
			CreatedAt:       date(2024, time.January, 5),
			SentCount:       23,
			OpenRate:        89.20,
			ClickRate:       34.80,
			ConversionRate:  26.10,
		},
		{
			ID:              "trigger-3",
			Name:            "Вітання нових користувачів",
			TriggerType:     "New user",
			Conditions:      "Перше замовлення",
			MessageTemplate: "Ласкаво просимо! Отримайте 20% знижку на друге замовлення з кодом: WELCOME20",
			Channel:         domain.ChannelPush,
			IsActive:        false,
			CreatedAt:       date(2023, time.December, 15),
			SentCount:       78,
			OpenRate:        72.40,
			ClickRate:       18.90,
			ConversionRate:  15.40,
		},
	}
}

func SampleOrders() []domain.Order {
	deliveredAt := time.Date(2023, time.June, 19, 13, 41, 0, 0, time.UTC)

	return []domain.Order{
		{
			ID:           "order-1",
			Status:       "Виконується",
			EmployeeName: "Сергій",
			EmployeeID:   "38096132079I",
			CreatedAt:    time.Date(2023, time.June, 19, 13, 34, 0, 0, time.UTC),
			DeliveredAt:  &deliveredAt,
			Route:        "Mazda на Петрівці (Степана Бан...",
			Address:      "Ярославська вулиця, 58",
		},
	}
}

func SampleStatistics() domain.Statistics {
	return domain.Statistics{
		ID:             "stats-1",
		CurrentBalance: 703937.94,
		TotalExpenses:  103.50,
		OrderCount:     1,
		DateFrom:       date(2023, time.June, 19),
		DateTo:         date(2023, time.June, 19),
	}
}
