package service

import (
	"time"

	"github.com/memorialapp/memorial-server/internal/domain"
)

// seedWork is one entry of the built-in catalog.
type seedWork struct {
	title       string
	description string
	source      string
	category    string
	url         string
}

// initialWorks is the curated catalog used whenever external ingest is
// unavailable. It covers Dr. Stanley's ministries, books, sermons, and
// teachings.
var initialWorks = []seedWork{
	{
		title:       "In Touch Ministries",
		description: "Founded by Dr. Charles Stanley in 1972, In Touch Ministries has shared the Gospel with millions worldwide through television, radio, and digital media. The ministry continues his vision of leading people into a growing relationship with Jesus Christ.",
		source:      "intouch.org",
		category:    "ministry",
		url:         "https://www.intouch.org",
	},
	{
		title:       "First Baptist Church Atlanta",
		description: "Dr. Stanley served as Senior Pastor of First Baptist Church Atlanta for over 50 years, from 1971 until 2020 when he became Pastor Emeritus. Under his leadership, the church grew to over 15,000 members.",
		source:      "fba.org",
		category:    "ministry",
		url:         "https://www.fba.org",
	},
	{
		title:       "How to Listen to God",
		description: "One of Dr. Stanley's most beloved books, teaching believers how to discern God's voice and direction in their lives through Scripture, prayer, and the Holy Spirit's guidance.",
		source:      "Published 1985",
		category:    "book",
	},
	{
		title:       "The Charles F. Stanley Life Principles Bible",
		description: "A study Bible featuring 30 Life Principles that Dr. Stanley gleaned from Scripture over his decades of ministry, helping readers apply biblical truth to everyday life.",
		source:      "Thomas Nelson",
		category:    "book",
	},
	{
		title:       "Obedience: The Key to God's Blessing",
		description: "A powerful sermon series exploring how obedience to God opens the door to His blessings and protection in our lives.",
		source:      "In Touch Ministries",
		category:    "sermon",
	},
	{
		title:       "The 30 Life Principles",
		description: "Dr. Stanley's foundational teachings distilled into 30 guiding principles for Christian living, covering topics from handling adversity to understanding God's will.",
		source:      "In Touch Ministries",
		category:    "teaching",
	},
	{
		title:       "When the Enemy Strikes",
		description: "Biblical strategies for spiritual warfare and standing firm against Satan's attacks on believers.",
		source:      "Published 2004",
		category:    "book",
	},
	{
		title:       "The Blessings of Brokenness",
		description: "Dr. Stanley's honest exploration of how God uses difficult seasons to shape and strengthen our faith.",
		source:      "Published 1997",
		category:    "book",
	},
	{
		title:       "Finding Peace",
		description: "Discovering God's peace that surpasses all understanding, even in life's most turbulent circumstances.",
		source:      "Published 2003",
		category:    "book",
	},
	{
		title:       "Living the Extraordinary Life",
		description: "Nine principles to living full, joyful, and effective lives for God's kingdom based on Dr. Stanley's decades of study and ministry.",
		source:      "Published 2005",
		category:    "book",
	},
	{
		title:       "Grace: An Invitation to a Way of Life",
		description: "A beautiful exploration of God's unmerited favor and how understanding grace transforms our relationship with Him.",
		source:      "In Touch Ministries",
		category:    "teaching",
	},
	{
		title:       "Two-Time Southern Baptist Convention President",
		description: "Dr. Stanley served as President of the Southern Baptist Convention from 1984-1986, helping guide the largest Protestant denomination in America during a pivotal era.",
		source:      "SBC Historical Archives",
		category:    "ministry",
	},
}

// toDomain converts a seed entry to a catalog work.
func (w seedWork) toDomain(id string, fetchedAt time.Time) *domain.Work {
	return &domain.Work{
		ID:          id,
		Title:       w.title,
		Description: w.description,
		Source:      w.source,
		Category:    w.category,
		URL:         w.url,
		FetchedAt:   fetchedAt,
	}
}
