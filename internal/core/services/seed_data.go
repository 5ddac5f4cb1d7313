package services

import "github.com/SscSPs/cashmap/internal/core/domain"

type seedRule struct {
	lookup   string
	display  string
	category string
	priority domain.RulePriority
}

var systemCategories = []domain.Category{
	{Name: "Income", Group: domain.GroupIncome},
	{Name: "Interest", Group: domain.GroupIncome},

	{Name: "Insurance", Group: domain.GroupBills},
	{Name: "Utilities", Group: domain.GroupBills},
	{Name: "Rates", Group: domain.GroupBills},
	{Name: "Inland Revenue", Group: domain.GroupBills},
	{Name: "Loan", Group: domain.GroupBills},
	{Name: "Credit Card Payment", Group: domain.GroupBills},
	{Name: "Childcare", Group: domain.GroupBills},
	{Name: "Subscriptions", Group: domain.GroupBills},

	{Name: "Groceries", Group: domain.GroupLivingCosts},
	{Name: "Petrol", Group: domain.GroupLivingCosts},
	{Name: "Public Transport", Group: domain.GroupLivingCosts},
	{Name: "Carparking", Group: domain.GroupLivingCosts},
	{Name: "Health and Beauty", Group: domain.GroupLivingCosts},
	{Name: "Child Care Costs", Group: domain.GroupLivingCosts},
	{Name: "Household", Group: domain.GroupLivingCosts},
	{Name: "Vehicle", Group: domain.GroupLivingCosts},

	{Name: "Dining Out", Group: domain.GroupDiscretionary},
	{Name: "Cafes", Group: domain.GroupDiscretionary},
	{Name: "Takeaways", Group: domain.GroupDiscretionary},
	{Name: "Taxis", Group: domain.GroupDiscretionary},
	{Name: "Gym", Group: domain.GroupDiscretionary},
	{Name: "Retail", Group: domain.GroupDiscretionary},
	{Name: "Alcohol and Tobacco", Group: domain.GroupDiscretionary},
	{Name: "Gambling", Group: domain.GroupDiscretionary},
	{Name: "Donations", Group: domain.GroupDiscretionary},

	{Name: "Bank Transfers", Group: domain.GroupOther},
	{Name: "Dishonours", Group: domain.GroupOther},
	{Name: "Misc Paypal", Group: domain.GroupOther},
	{Name: "Not Categorised Party", Group: domain.GroupOther},
}

var systemRules = []seedRule{
	// Edge cases win over everything else.
	{"PAK N SAVE FUEL", "Pak'nSave Fuel", "Petrol", domain.PriorityEdgeCase},
	{"COUNTDOWN FUEL", "Countdown Fuel", "Petrol", domain.PriorityEdgeCase},
	{"YOUTUBEPREMIUM", "YouTube Premium", "Subscriptions", domain.PriorityEdgeCase},
	{"BILL PAYMENT", "Bill Payment", "Not Categorised Party", domain.PriorityEdgeCase},
	{"DISHONOUR", "Dishonour Fee", "Dishonours", domain.PriorityEdgeCase},
	{"UBER EATS", "Uber Eats", "Takeaways", domain.PriorityEdgeCase},

	{"COUNTDOWN", "Countdown", "Groceries", domain.PriorityExactMerchant},
	{"NEW WORLD", "New World", "Groceries", domain.PriorityExactMerchant},
	{"PAK N SAVE", "Pak'nSave", "Groceries", domain.PriorityExactMerchant},
	{"FOUR SQUARE", "Four Square", "Groceries", domain.PriorityExactMerchant},
	{"Z ENERGY", "Z Energy", "Petrol", domain.PriorityExactMerchant},
	{"BP", "BP", "Petrol", domain.PriorityExactMerchant},
	{"MOBIL", "Mobil", "Petrol", domain.PriorityExactMerchant},
	{"UBER", "Uber", "Taxis", domain.PriorityExactMerchant},
	{"NETFLIX", "Netflix", "Subscriptions", domain.PriorityExactMerchant},
	{"SPOTIFY", "Spotify", "Subscriptions", domain.PriorityExactMerchant},
	{"DISNEY PLUS", "Disney+", "Subscriptions", domain.PriorityExactMerchant},
	{"MCDONALDS", "McDonald's", "Takeaways", domain.PriorityExactMerchant},
	{"KFC", "KFC", "Takeaways", domain.PriorityExactMerchant},
	{"DOMINOS", "Domino's", "Takeaways", domain.PriorityExactMerchant},
	{"THE WAREHOUSE", "The Warehouse", "Retail", domain.PriorityExactMerchant},
	{"KMART", "Kmart", "Retail", domain.PriorityExactMerchant},
	{"BUNNINGS", "Bunnings", "Household", domain.PriorityExactMerchant},
	{"MITRE 10", "Mitre 10", "Household", domain.PriorityExactMerchant},
	{"CHEMIST WAREHOUSE", "Chemist Warehouse", "Health and Beauty", domain.PriorityExactMerchant},
	{"LIQUORLAND", "Liquorland", "Alcohol and Tobacco", domain.PriorityExactMerchant},
	{"SUPER LIQUOR", "Super Liquor", "Alcohol and Tobacco", domain.PriorityExactMerchant},
	{"TAB NZ", "TAB", "Gambling", domain.PriorityExactMerchant},
	{"LOTTO", "Lotto", "Gambling", domain.PriorityExactMerchant},
	{"AT HOP", "AT HOP", "Public Transport", domain.PriorityExactMerchant},
	{"SNAPPER", "Snapper", "Public Transport", domain.PriorityExactMerchant},
	{"WILSON PARKING", "Wilson Parking", "Carparking", domain.PriorityExactMerchant},
	{"MERCURY", "Mercury", "Utilities", domain.PriorityExactMerchant},
	{"GENESIS", "Genesis Energy", "Utilities", domain.PriorityExactMerchant},
	{"CONTACT ENERGY", "Contact Energy", "Utilities", domain.PriorityExactMerchant},
	{"SPARK", "Spark", "Utilities", domain.PriorityExactMerchant},
	{"ONE NZ", "One NZ", "Utilities", domain.PriorityExactMerchant},
	{"AA INSURANCE", "AA Insurance", "Insurance", domain.PriorityExactMerchant},
	{"AMI INSURANCE", "AMI", "Insurance", domain.PriorityExactMerchant},
	{"SOUTHERN CROSS", "Southern Cross", "Insurance", domain.PriorityExactMerchant},
	{"INLAND REVENUE", "Inland Revenue", "Inland Revenue", domain.PriorityExactMerchant},
	{"IRD", "Inland Revenue", "Inland Revenue", domain.PriorityExactMerchant},
	{"CITY COUNCIL", "City Council Rates", "Rates", domain.PriorityExactMerchant},
	{"LES MILLS", "Les Mills", "Gym", domain.PriorityExactMerchant},
	{"PAYPAL", "PayPal", "Misc Paypal", domain.PriorityExactMerchant},

	{"SALARY", "Salary", "Income", domain.PriorityKeyword},
	{"WAGES", "Wages", "Income", domain.PriorityKeyword},
	{"INTEREST", "Interest", "Interest", domain.PriorityKeyword},
	{"CAFE", "Cafe", "Cafes", domain.PriorityKeyword},
	{"COFFEE", "Coffee", "Cafes", domain.PriorityKeyword},
	{"RESTAURANT", "Restaurant", "Dining Out", domain.PriorityKeyword},
	{"FUEL", "Fuel", "Petrol", domain.PriorityKeyword},
	{"PHARMACY", "Pharmacy", "Health and Beauty", domain.PriorityKeyword},
	{"INSURANCE", "Insurance", "Insurance", domain.PriorityKeyword},
	{"LOAN", "Loan Repayment", "Loan", domain.PriorityKeyword},
	{"MORTGAGE", "Mortgage", "Loan", domain.PriorityKeyword},
	{"CREDIT CARD", "Credit Card Payment", "Credit Card Payment", domain.PriorityKeyword},
	{"DAYCARE", "Daycare", "Childcare", domain.PriorityKeyword},
	{"KINDERGARTEN", "Kindergarten", "Childcare", domain.PriorityKeyword},
	{"PARKING", "Parking", "Carparking", domain.PriorityKeyword},
	{"TAXI", "Taxi", "Taxis", domain.PriorityKeyword},
	{"DONATION", "Donation", "Donations", domain.PriorityKeyword},
	{"TRANSFER", "Transfer", "Bank Transfers", domain.PriorityKeyword},
	{"WOF", "Warrant of Fitness", "Vehicle", domain.PriorityKeyword},
	{"TYRES", "Tyres", "Vehicle", domain.PriorityKeyword},
}
