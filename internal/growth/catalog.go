package growth

// Activity is one Growth Hub reflection prompt. The catalog is fixed in
// code, prompts are not editable through the portal.
type Activity struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Icon  string `json:"icon"`
}

// Activities is the full prompt catalog in display order.
var Activities = []Activity{
	{ID: 1, Title: "Daily Mood Check-in", Desc: "How are you feeling right now?", Icon: "😊"},
	{ID: 2, Title: "Gratitude Journal", Desc: "List three things you're thankful for today.", Icon: "🌟"},
	{ID: 3, Title: "Describe Your Day in One Word", Desc: "Summarize your day using just one word.", Icon: "🔤"},
	{ID: 4, Title: "Positive Affirmation", Desc: "Write a phrase to empower your day.", Icon: "💪"},
	{ID: 5, Title: "Today's Big Win", Desc: "What is one thing you accomplished today?", Icon: "🏆"},
	{ID: 6, Title: "Challenge Reflection", Desc: "Describe a difficulty you managed today.", Icon: "🎯"},
	{ID: 7, Title: "Letter to Future Self", Desc: "Write a note to yourself in one year.", Icon: "✉️"},
	{ID: 8, Title: "Self-Compassion Check", Desc: "List two ways you showed yourself kindness.", Icon: "🤗"},
	{ID: 9, Title: "One Act of Kindness", Desc: "What did you do for someone else today?", Icon: "🤝"},
	{ID: 10, Title: "Goal for Tomorrow", Desc: "Set a small goal for the next day.", Icon: "🎯"},
	{ID: 11, Title: "Stress Level Meter", Desc: "Rate your stress today (1–10) and why.", Icon: "📊"},
	{ID: 12, Title: "Best Memory This Week", Desc: "Describe a highlight of your week so far.", Icon: "📸"},
	{ID: 13, Title: "A Favorite Song", Desc: "Share a song that lifts your mood.", Icon: "🎵"},
	{ID: 14, Title: "Random Act of Joy", Desc: "What random thing brought you joy today?", Icon: "😂"},
	{ID: 15, Title: "Compliment Yourself", Desc: "Write a genuine compliment to yourself.", Icon: "🪞"},
	{ID: 16, Title: "Draw Your Emotion", Desc: "Use emoji or words to express your mood.", Icon: "🎨"},
	{ID: 17, Title: "Family Reflection", Desc: "Share one positive family interaction.", Icon: "👨‍👩‍👦"},
	{ID: 18, Title: "Teacher Thanks", Desc: "Thank a teacher or mentor in writing.", Icon: "🍎"},
	{ID: 19, Title: "Hobby Time", Desc: "What did you do just for fun today?", Icon: "🏓"},
	{ID: 20, Title: "Mini Meditation", Desc: "Take 2 minutes to breathe and reflect.", Icon: "🧘"},
	{ID: 21, Title: "Quick Brain Teaser", Desc: "Solve a logic or puzzle question.", Icon: "🧩"},
	{ID: 22, Title: "Word Scramble", Desc: "Unscramble a positive word of the day.", Icon: "🔄"},
	{ID: 23, Title: "Picture This!", Desc: "Upload (or describe) a photo that makes you smile.", Icon: "📷"},
	{ID: 24, Title: "Meaningful Quote", Desc: "Share a quote that resonates with you.", Icon: "💬"},
	{ID: 25, Title: "My Role Model", Desc: "Who inspires you and why?", Icon: "🕴️"},
	{ID: 26, Title: "Superpower Imagination", Desc: "Invent your own superpower and explain it.", Icon: "🦸‍♂️"},
	{ID: 27, Title: "Three-Word Self", Desc: "Describe yourself in as few words as possible.", Icon: "📝"},
	{ID: 28, Title: "Something New", Desc: "Did you try anything new today?", Icon: "✨"},
	{ID: 29, Title: "Kind Thought", Desc: "Share a kind thought for someone else.", Icon: "💭"},
	{ID: 30, Title: "Doodle Pad", Desc: "Draw something that represents your mood.", Icon: "🖌️"},
	{ID: 31, Title: "Friend Check-in", Desc: "Send a message to a friend and reflect on their reply.", Icon: "📱"},
	{ID: 32, Title: "Gratitude Photo", Desc: "Upload a photo of something you're grateful for.", Icon: "📷"},
	{ID: 33, Title: "Describe a Dream", Desc: "Recall the most recent dream you remember.", Icon: "🌙"},
	{ID: 34, Title: "Advice to Younger You", Desc: "What would you tell your 8-year-old self?", Icon: "👶"},
	{ID: 35, Title: "One Small Win", Desc: "Something you did well today, no matter how small.", Icon: "👏"},
	{ID: 36, Title: "Emotion Wheel", Desc: "Pick today’s main feeling from a wheel of emotions.", Icon: "🌀"},
	{ID: 37, Title: "Quick Survey", Desc: "Rank your sleep, nutrition, exercise (1–5)", Icon: "☑️"},
	{ID: 38, Title: "Picture Poem", Desc: "Write a quick poem about how you feel.", Icon: "🖋️"},
	{ID: 39, Title: "Future Vision", Desc: "Describe your ideal day 5 years from now.", Icon: "🔮"},
	{ID: 40, Title: "Peer Compliment", Desc: "Say something nice to a classmate.", Icon: "🏅"},
	{ID: 41, Title: "PERMA Profiler", Desc: "How much do you experience positivity, engagement, relationships, meaning, achievement?", Icon: "📈"},
	{ID: 42, Title: "Growth Mindset", Desc: "Describe a way you learned from a setback.", Icon: "📚"},
	{ID: 43, Title: "Motivation Meter", Desc: "Rate your motivation today (1–10) and why.", Icon: "🕹️"},
	{ID: 44, Title: "Strengths List", Desc: "Write three of your personal strengths.", Icon: "💪"},
	{ID: 45, Title: "Best Recent Habit", Desc: "What healthy habit did you practice today?", Icon: "🍎"},
	{ID: 46, Title: "Belief Update", Desc: "Write about changing a belief or opinion recently.", Icon: "🔁"},
	{ID: 47, Title: "Values Ranking", Desc: "What’s most important: Honesty, Kindness, or Ambition?", Icon: "🔢"},
	{ID: 48, Title: "Goal Progress", Desc: "What step did you take toward a current goal?", Icon: "🚀"},
	{ID: 49, Title: "Mini Habit Tracker", Desc: "Did you drink enough water today?", Icon: "💧"},
	{ID: 50, Title: "Stress Relief Strategy", Desc: "How did you unwind or relax today?", Icon: "🚿"},
	{ID: 51, Title: "Best Friend Story", Desc: "Share a memory with your closest friend.", Icon: "👫"},
	{ID: 52, Title: "Artist for a Day", Desc: "Draw or describe something creative you made.", Icon: "🎭"},
	{ID: 53, Title: "Positive Message Board", Desc: "Leave a kind note for others to see.", Icon: "📢"},
	{ID: 54, Title: "Energy Level", Desc: "How much energy do you have right now? Why?", Icon: "⚡"},
	{ID: 55, Title: "Kindness Wheel", Desc: "Spin for a random way to be kind today.", Icon: "🎡"},
	{ID: 56, Title: "Nature Pause", Desc: "Spend 3 minutes outside and reflect.", Icon: "🌳"},
	{ID: 57, Title: "Micro-Story", Desc: "Write your day as a 6-word story.", Icon: "📖"},
	{ID: 58, Title: "Purpose Check", Desc: "What makes you feel most alive?", Icon: "🌈"},
	{ID: 59, Title: "Mini Quiz: Who Inspires You?", Desc: "Choose a role model and explain why.", Icon: "🗣️"},
	{ID: 60, Title: "Today’s Lesson", Desc: "What did you learn today?", Icon: "📗"},
	{ID: 61, Title: "Dream Job Reflection", Desc: "What’s your dream career? Why?", Icon: "💼"},
	{ID: 62, Title: "Mood Calendar", Desc: "What color would you give today?", Icon: "🗓️"},
	{ID: 63, Title: "Playlist Maker", Desc: "List three songs for your mood.", Icon: "🎶"},
	{ID: 64, Title: "Describe a Place You Love", Desc: "What space helps you feel calm?", Icon: "🏞️"},
	{ID: 65, Title: "Mini Logic Puzzle", Desc: "Answer a quick riddle!", Icon: "🧠"},
	{ID: 66, Title: "Daily Affirmation Picker", Desc: "Choose or write today’s affirmation.", Icon: "💫"},
	{ID: 67, Title: "Body Scan", Desc: "Notice and write about physical sensations.", Icon: "🦶"},
	{ID: 68, Title: "Surprise Challenge", Desc: "Do something unexpected for yourself or another.", Icon: "🎁"},
	{ID: 69, Title: "Social Butterfly", Desc: "How did you connect with others today?", Icon: "🦋"},
	{ID: 70, Title: "Appreciation Post", Desc: "Recognize something or someone you appreciate.", Icon: "🎉"},
	{ID: 71, Title: "Describe a Problem", Desc: "What’s one challenge you’d like advice on?", Icon: "🔍"},
	{ID: 72, Title: "Energy Booster", Desc: "What gives you an instant energy boost?", Icon: "💥"},
	{ID: 73, Title: "Funny Memory", Desc: "Share something that made you laugh recently.", Icon: "🤣"},
	{ID: 74, Title: "Today’s Inspiration", Desc: "Quote or lesson that inspired you.", Icon: "🌠"},
	{ID: 75, Title: "Digital Declutter", Desc: "Did you tidy up your device or workspace?", Icon: "🧹"},
	{ID: 76, Title: "Check on a Friend", Desc: "Reach out to check in on someone.", Icon: "📞"},
	{ID: 77, Title: "Gratitude Letter", Desc: "Write a thank-you note to someone who helped you.", Icon: "✍️"},
	{ID: 78, Title: "Micro-Habit", Desc: "What small healthy habit did you practice?", Icon: "🦶"},
	{ID: 79, Title: "Sunshine Soak", Desc: "Spend a moment in sunshine and write your thoughts.", Icon: "☀️"},
	{ID: 80, Title: "Describe Your Safe Space", Desc: "Where do you feel most secure or at peace?", Icon: "🏡"},
	{ID: 81, Title: "Cheer Up a Peer", Desc: "Send an encouraging message to a friend.", Icon: "👋"},
	{ID: 82, Title: "Motivational Image", Desc: "Find or draw a motivational image.", Icon: "🖼️"},
	{ID: 83, Title: "Play a Short Game", Desc: "Solve a mini game or riddle here!", Icon: "🎲"},
	{ID: 84, Title: "Who Do You Admire?", Desc: "Name a person you admire and explain why.", Icon: "⭐"},
	{ID: 85, Title: "Grit & Perseverance", Desc: "Share a time you kept going despite difficulty.", Icon: "🚴"},
	{ID: 86, Title: "Breathe and Notice", Desc: "Take 5 slow breaths, then describe how you feel.", Icon: "🌬️"},
	{ID: 87, Title: "What Are You Curious About?", Desc: "Describe something you want to learn or try.", Icon: "❓"},
	{ID: 88, Title: "List Your Favorites", Desc: "Book, movie, and meal you love best!", Icon: "🥇"},
	{ID: 89, Title: "Ideal Day", Desc: "Describe what would make today ideal for you.", Icon: "🎈"},
	{ID: 90, Title: "Mini Bucket List", Desc: "List three things you want to try this year.", Icon: "📝"},
	{ID: 91, Title: "Mood Check-Out", Desc: "How do you feel after today's activities?", Icon: "😌"},
	{ID: 92, Title: "Describe a Surprise", Desc: "Share a recent pleasant surprise.", Icon: "🎊"},
	{ID: 93, Title: "Self-Reflection Moment", Desc: "What have you learned about yourself recently?", Icon: "👤"},
	{ID: 94, Title: "Offer Someone Help", Desc: "How did you help someone else today?", Icon: "🤲"},
	{ID: 95, Title: "Share a Short Story", Desc: "Write a mini story about a real or imagined event.", Icon: "📘"},
	{ID: 96, Title: "Daily Intention", Desc: "What’s your main intention for tomorrow?", Icon: "📅"},
	{ID: 97, Title: "Your Best Trait", Desc: "What personal trait are you proudest of?", Icon: "💖"},
	{ID: 98, Title: "Silent Minute", Desc: "Sit in silence and write your first thought after.", Icon: "🤫"},
	{ID: 99, Title: "Shoutout Someone", Desc: "Give a shoutout to a peer or teacher.", Icon: "📣"},
	{ID: 100, Title: "Virtual Garden", Desc: "Imagine growing a quality (like resilience or kindness). Write how you’ll nurture it!", Icon: "🌿"},
}

var activityByID = func() map[int]Activity {
	m := make(map[int]Activity, len(Activities))
	for _, a := range Activities {
		m[a.ID] = a
	}
	return m
}()

// ActivityByID looks up a prompt by its catalog ID.
func ActivityByID(id int) (Activity, bool) {
	a, ok := activityByID[id]
	return a, ok
}
