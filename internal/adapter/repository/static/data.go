package static

import "github.com/jaipal-12/villageconnect/internal/domain/catalog"

// services is the full VillageConnect catalog. Entries are ordered by
// category block; the order is part of the contract (list endpoints and
// filters preserve it).
var services = []catalog.Service{
	{
		ID:          "edu-1",
		Title:       "Digital Literacy Program",
		Category:    catalog.CategoryEducation,
		Description: "Learn basic computer skills, internet usage, and digital tools for daily life.",
		Provider:    "VillageConnect Education",
		Duration:    "4 weeks",
		Requirements: []string{
			"Basic reading ability",
			"Access to smartphone or computer",
		},
		Benefits: []string{
			"Digital skills certification",
			"Online banking knowledge",
			"Government services access",
		},
		Videos: []catalog.Video{
			{
				ID:          "edu-1-v1",
				Title:       "Introduction to Smartphones",
				Description: "Learn the basics of using a smartphone for daily tasks",
				Duration:    "15:30",
				Thumbnail:   "https://images.pexels.com/photos/607812/pexels-photo-607812.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://www.youtube.com/embed/hYB0mn5zh2c",
				Category:    "Basic Skills",
			},
			{
				ID:          "edu-1-v2",
				Title:       "Online Banking Made Simple",
				Description: "Step-by-step guide to safe online banking",
				Duration:    "22:45",
				Thumbnail:   "https://images.pexels.com/photos/259027/pexels-photo-259027.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://www.youtube.com/embed/VV2g6zH9Vm4",
				Category:    "Banking",
			},
			{
				ID:          "edu-1-v3",
				Title:       "Government Services Online",
				Description: "Access government services from your phone",
				Duration:    "18:20",
				Thumbnail:   "https://images.pexels.com/photos/1181467/pexels-photo-1181467.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://www.youtube.com/embed/x5W8SkszjTk",
				Category:    "Government Services",
			},
		},
	},
	{
		ID:          "edu-2",
		Title:       "Adult Education Classes",
		Category:    catalog.CategoryEducation,
		Description: "Complete your school education with flexible timing for working adults.",
		Provider:    "Rural Education Foundation",
		Duration:    "6 months",
		Requirements: []string{
			"Basic literacy",
			"Commitment to attend classes",
		},
		Benefits: []string{
			"10th/12th grade certification",
			"Better job opportunities",
			"Government scheme eligibility",
		},
		Videos: []catalog.Video{
			{
				ID:          "edu-2-v1",
				Title:       "Mathematics Basics",
				Description: "Fundamental mathematics concepts for adult learners",
				Duration:    "35:15",
				Thumbnail:   "https://images.pexels.com/photos/3729557/pexels-photo-3729557.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://youtu.be/CobQvtjL5gc?si=o5sWn715aNJJ6qBp",
				Category:    "Mathematics",
			},
			{
				ID:          "edu-2-v2",
				Title:       "English Communication Skills",
				Description: "Improve your English speaking and writing skills",
				Duration:    "28:40",
				Thumbnail:   "https://images.pexels.com/photos/1181772/pexels-photo-1181772.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://youtu.be/PzyKDZLO5Bk?si=nh-ZV9GHdZbKWTcw",
				Category:    "Language",
			},
		},
	},
	{
		ID:          "edu-3",
		Title:       "Skill Development Workshop",
		Category:    catalog.CategoryEducation,
		Description: "Learn practical skills like tailoring, handicrafts, and small business management.",
		Provider:    "Skill India Initiative",
		Duration:    "3 months",
		Requirements: []string{
			"Interest in learning new skills",
		},
		Benefits: []string{
			"Skill certification",
			"Employment opportunities",
			"Business setup guidance",
		},
		Videos: []catalog.Video{
			{
				ID:          "edu-3-v1",
				Title:       "Basic Tailoring Techniques",
				Description: "Learn fundamental sewing and tailoring skills",
				Duration:    "42:30",
				Thumbnail:   "https://images.pexels.com/photos/3738673/pexels-photo-3738673.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://www.youtube.com/embed/UOwRZn3YQlI",
				Category:    "Tailoring",
			},
			{
				ID:          "edu-3-v2",
				Title:       "Small Business Management",
				Description: "Essential skills for running a small business",
				Duration:    "31:25",
				Thumbnail:   "https://images.pexels.com/photos/3184465/pexels-photo-3184465.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://www.youtube.com/embed/g9aDizJpd_s",
				Category:    "Business",
			},
		},
	},
	{
		ID:          "health-1",
		Title:       "Mobile Health Checkup Camp",
		Category:    catalog.CategoryHealthcare,
		Description: "Free monthly health checkups with qualified doctors visiting your village.",
		Provider:    "Rural Health Mission",
		Duration:    "Monthly visits",
		Requirements: []string{
			"Village registration",
			"Aadhaar card or local ID",
		},
		Benefits: []string{
			"Free basic health screening",
			"Medicine at subsidized rates",
			"Referral to district hospital",
		},
		Videos: []catalog.Video{
			{
				ID:          "health-1-v1",
				Title:       "Preventive Health at Home",
				Description: "Simple daily habits that prevent common illnesses",
				Duration:    "20:10",
				Thumbnail:   "https://images.pexels.com/photos/40568/medical-appointment-doctor-healthcare-40568.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://www.youtube.com/embed/7zEJ0bHSgmA",
				Category:    "Prevention",
			},
			{
				ID:          "health-1-v2",
				Title:       "First Aid Essentials",
				Description: "Handle minor injuries and emergencies before help arrives",
				Duration:    "26:35",
				Thumbnail:   "https://images.pexels.com/photos/263402/pexels-photo-263402.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://www.youtube.com/embed/ea1RJUOiNfQ",
				Category:    "First Aid",
			},
		},
	},
	{
		ID:          "agri-1",
		Title:       "Modern Farming Techniques",
		Category:    catalog.CategoryAgriculture,
		Description: "Learn scientific farming methods to increase crop yield and reduce costs.",
		Provider:    "Agricultural Extension Office",
		Duration:    "2 months",
		Requirements: []string{
			"Own or lease farmland",
			"Basic farming experience",
		},
		Benefits: []string{
			"Higher crop yield",
			"Reduced farming costs",
			"Weather-resistant farming",
		},
		Videos: []catalog.Video{
			{
				ID:          "agri-1-v1",
				Title:       "Soil Testing and Preparation",
				Description: "Learn how to test and prepare soil for optimal crop growth",
				Duration:    "25:45",
				Thumbnail:   "https://images.pexels.com/photos/1595104/pexels-photo-1595104.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://www.youtube.com/embed/Ac_T5U1edwI",
				Category:    "Soil Management",
			},
			{
				ID:          "agri-1-v2",
				Title:       "Organic Fertilizer Making",
				Description: "Create effective organic fertilizers from farm waste",
				Duration:    "32:20",
				Thumbnail:   "https://images.pexels.com/photos/1595108/pexels-photo-1595108.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://www.youtube.com/embed/_3fAt14X6iI",
				Category:    "Fertilizers",
			},
			{
				ID:          "agri-1-v3",
				Title:       "Water Conservation Techniques",
				Description: "Efficient irrigation and water saving methods",
				Duration:    "28:15",
				Thumbnail:   "https://images.pexels.com/photos/1595105/pexels-photo-1595105.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://www.youtube.com/embed/E3CP_L4grxI",
				Category:    "Water Management",
			},
			{
				ID:          "agri-1-v4",
				Title:       "Pest Control Without Chemicals",
				Description: "Natural methods to protect crops from pests",
				Duration:    "24:50",
				Thumbnail:   "https://images.pexels.com/photos/1595107/pexels-photo-1595107.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://www.youtube.com/embed/OiIKu1Hgf6A",
				Category:    "Pest Control",
			},
		},
	},
	{
		ID:          "agri-3",
		Title:       "Agricultural Loan Assistance",
		Category:    catalog.CategoryAgriculture,
		Description: "Get help with agricultural loans at low interest rates for farming needs.",
		Provider:    "Rural Development Bank",
		Duration:    "1-2 weeks processing",
		Requirements: []string{
			"Land documents",
			"Income proof",
			"Farming plan",
		},
		Benefits: []string{
			"Low interest rates",
			"Flexible repayment",
			"Quick approval",
		},
		Videos: []catalog.Video{
			{
				ID:          "agri-3-v1",
				Title:       "Understanding Agricultural Loans",
				Description: "Complete guide to agricultural loan types and requirements",
				Duration:    "19:30",
				Thumbnail:   "https://images.pexels.com/photos/259027/pexels-photo-259027.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://www.youtube.com/embed/F8_K9D7tTOw",
				Category:    "Finance",
			},
			{
				ID:          "agri-3-v2",
				Title:       "Loan Application Process",
				Description: "Step-by-step guide to applying for agricultural loans",
				Duration:    "16:45",
				Thumbnail:   "https://images.pexels.com/photos/3184465/pexels-photo-3184465.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://www.youtube.com/embed/B35vE0u1Nzw",
				Category:    "Application",
			},
		},
	},
	{
		ID:          "travel-1",
		Title:       "Rural Transport Connect",
		Category:    catalog.CategoryTravel,
		Description: "Shared transport service connecting villages to nearby towns and markets.",
		Provider:    "District Transport Cooperative",
		Duration:    "Daily routes",
		Requirements: []string{
			"Route registration",
		},
		Benefits: []string{
			"Affordable fixed fares",
			"Scheduled market-day trips",
			"Safe verified drivers",
		},
	},
	{
		ID:          "living-1",
		Title:       "Clean Water Initiative",
		Category:    catalog.CategoryLiving,
		Description: "Household water purification units and community well maintenance support.",
		Provider:    "Gram Panchayat Services",
		Duration:    "Ongoing",
		Requirements: []string{
			"Household registration with panchayat",
		},
		Benefits: []string{
			"Subsidized purification units",
			"Regular water quality testing",
			"Maintenance training",
		},
		Videos: []catalog.Video{
			{
				ID:          "living-1-v1",
				Title:       "Safe Drinking Water at Home",
				Description: "Low-cost ways to purify and store drinking water",
				Duration:    "14:05",
				Thumbnail:   "https://images.pexels.com/photos/416528/pexels-photo-416528.jpeg?auto=compress&cs=tinysrgb&w=400",
				VideoURL:    "https://www.youtube.com/embed/Dy7DtHlIFCM",
				Category:    "Water Safety",
			},
		},
	},
}
