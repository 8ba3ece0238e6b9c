package catalog

import "coachbot/internal/models"

// LearnCategory - категория обучающих статей
type LearnCategory struct {
	ID    string
	Label string
	Icon  string
}

// LearnCategories - категории для фильтрации статей
var LearnCategories = []LearnCategory{
	{ID: "all", Label: "All", Icon: "📖"},
	{ID: "muscles", Label: "Muscles", Icon: "💪"},
	{ID: "injuries", Label: "Injuries", Icon: "🩹"},
	{ID: "recovery", Label: "Recovery", Icon: "😴"},
	{ID: "nutrition", Label: "Nutrition", Icon: "🥗"},
}

// LearnTopics - обучающие статьи.
// Достижение learning_all завязано на размер этого списка.
var LearnTopics = []models.LearnTopic{
	{
		ID:       "chest",
		Title:    "Chest Muscles",
		Category: "muscles",
		Icon:     "💪",
		Summary:  "Pectoralis major & minor - pushing movements",
		Content: `The chest is made up of two main muscles.

Pectoralis Major - the large, fan-shaped muscle that makes up most of your chest. The clavicular head (upper chest) is activated with incline movements, the sternal head with flat and decline movements.

Pectoralis Minor - a smaller muscle underneath that helps stabilize your shoulder blade.

Best exercises: bench press (flat, incline, decline), push-ups, dumbbell flyes, cable crossovers.

Training tips: vary angles to hit both heads, focus on full range of motion, don't flare elbows too wide to protect shoulders.`,
	},
	{
		ID:       "back",
		Title:    "Back Muscles",
		Category: "muscles",
		Icon:     "🦴",
		Summary:  "Lats, traps, rhomboids - pulling movements",
		Content: `The back contains several major muscle groups.

Latissimus Dorsi (lats) - the large V-shaped muscles that give width to your back. They pull your arms down and back.

Trapezius (traps) - diamond-shaped muscle from neck to mid-back. Upper traps shrug shoulders, middle and lower traps squeeze shoulder blades.

Rhomboids sit between the shoulder blades and help with posture; the erector spinae runs along the spine and keeps you upright.

Best exercises: pull-ups and lat pulldowns, rows, deadlifts, face pulls.

Training tips: think "pull with elbows" not hands, squeeze shoulder blades together, balance vertical and horizontal pulls.`,
	},
	{
		ID:       "shoulders",
		Title:    "Shoulder Muscles",
		Category: "muscles",
		Icon:     "🎯",
		Summary:  "Deltoids & rotator cuff - overhead movements",
		Content: `The shoulder is a ball-and-socket joint with several muscles.

Deltoids - the rounded shoulder muscles with three heads: anterior (raises the arm forward), lateral (sideways) and posterior (pulls the arm back).

Rotator Cuff - four small muscles that stabilize the shoulder: supraspinatus, infraspinatus, teres minor, subscapularis. Crucial for injury prevention.

Best exercises: overhead press, lateral raises, front raises, face pulls for rear delts, external rotations for the rotator cuff.

Training tips: warm up the cuff before pressing, balance all three deltoid heads, keep overhead volume reasonable.`,
	},
	{
		ID:       "legs",
		Title:    "Leg Muscles",
		Category: "muscles",
		Icon:     "🦵",
		Summary:  "Quads, hamstrings, glutes, calves",
		Content: `The legs contain the body's largest muscles.

Quadriceps - four muscles on the front of the thigh that extend the knee. Hamstrings - three muscles on the back of the thigh that bend the knee and extend the hip. The gluteus maximus is the largest muscle in your body and powers hip extension. Calves (gastrocnemius and soleus) push you off when walking and running.

Best exercises: squats (back, front, goblet), deadlifts (conventional, Romanian), lunges and split squats, leg press, calf raises.

Training tips: go deep on squats for full development, don't skip hamstring work, train glutes from multiple angles.`,
	},
	{
		ID:       "core",
		Title:    "Core Muscles",
		Category: "muscles",
		Icon:     "🔥",
		Summary:  "Abs, obliques, and deep stabilizers",
		Content: `The core is more than just "abs".

Rectus Abdominis - the "six-pack" muscle that flexes your spine. Obliques handle rotation and lateral bending. The transverse abdominis wraps around your midsection like a corset and is key for stability. The erector spinae opposes the abs from behind.

Best exercises: planks (front and side), dead bugs, Pallof press, cable crunches, bird dogs.

Training tips: brace your core, don't just flex; balance flexion with extension work; quality over quantity.`,
	},
	{
		ID:       "knee-injury",
		Title:    "Knee Injury Prevention",
		Category: "injuries",
		Icon:     "🦿",
		Summary:  "Protect your knees during training",
		Content: `Common knee issues: patellofemoral syndrome (runner's knee), IT band syndrome, MCL/ACL strains, meniscus tears.

Prevention: strong quads and hamstrings protect the knee, and weak hips cause knee problems, so don't neglect hip strength. Track knees over toes and don't let them cave in, control the descent, avoid excessive forward lean. Stretch hip flexors and quads, work on ankle mobility.

If you have knee pain: reduce range of motion temporarily, choose low-impact exercises, strengthen the muscles around the knee, and see a professional if pain persists.`,
	},
	{
		ID:       "shoulder-injury",
		Title:    "Shoulder Injury Prevention",
		Category: "injuries",
		Icon:     "🤕",
		Summary:  "Keep your shoulders healthy",
		Content: `The shoulder is the most mobile (and vulnerable) joint. Common issues: rotator cuff strains, impingement, labrum tears, biceps tendinitis.

Prevention: always warm up the rotator cuff before pressing (band pull-aparts, external rotations). For every push, do a pull; don't neglect rear delts and upper back. Don't flare elbows to 90 degrees on bench press, keep shoulders packed and down.

Warning signs: sharp pain during pressing, clicking or popping with pain, weakness when lifting the arm.`,
	},
	{
		ID:       "back-injury",
		Title:    "Back Injury Prevention",
		Category: "injuries",
		Icon:     "🔙",
		Summary:  "Protect your spine during lifting",
		Content: `Back injuries can sideline you for weeks. Common issues: muscle strains, disc herniation, sciatica, facet joint pain.

Prevention: master bracing - take a deep breath into your belly, brace like you're about to get punched, maintain a neutral spine throughout lifts. Build a strong core with planks, dead bugs and bird dogs. On deadlifts keep the bar close, push the floor away, never round the lower back under load. Master the hip hinge pattern before adding weight.

Any sharp pain - stop immediately. Chronic tightness - address with mobility work.`,
	},
	{
		ID:       "warmup",
		Title:    "Warming Up Properly",
		Category: "recovery",
		Icon:     "🔥",
		Summary:  "Prepare your body for training",
		Content: `A proper warm-up prevents injuries and improves performance: it increases blood flow, raises body temperature, prepares the nervous system and lubricates joints.

General warm-up (5-10 min): light cardio until you break a light sweat. Then dynamic stretching: leg swings, arm circles, hip circles, walking lunges with twist, inchworms.

Movement-specific prep: bodyweight squats before squats, push-ups and band pull-aparts before bench, hip hinges before deadlifts. Activation work: glute bridges before leg day, dead bugs before any training.

What not to do: skip the warm-up when rushed, static stretch cold muscles, go straight to heavy weights.`,
	},
	{
		ID:       "recovery",
		Title:    "Recovery Basics",
		Category: "recovery",
		Icon:     "😴",
		Summary:  "Rest and grow stronger",
		Content: `You don't get stronger during training - you get stronger recovering from it.

Sleep is most important: aim for 7-9 hours per night on a consistent schedule; sleep is when growth hormone peaks. Eat enough protein, don't skip carbs, stay hydrated. On rest days do light movement - walking, swimming, easy cycling. Foam roll tight areas and stretch after training. High stress means poor recovery, so don't overtrain when life is stressful.

Signs you need more recovery: persistent fatigue, decreased performance, mood changes, frequent illness, trouble sleeping.`,
	},
	{
		ID:       "protein",
		Title:    "Protein for Muscle",
		Category: "nutrition",
		Icon:     "🥩",
		Summary:  "How much protein do you really need?",
		Content: `Protein is essential for building and repairing muscle.

How much: 0.7-1g per pound of bodyweight, spread across 3-5 meals. A 150lb person needs 105-150g daily.

Best sources: chicken, turkey, lean beef, fish, eggs, Greek yogurt, cottage cheese, legumes and tofu for plant-based diets.

Timing: 20-40g per meal is optimal, post-workout protein helps recovery, casein before bed releases slowly.

Common mistakes: eating all protein in one meal, relying only on supplements, not tracking intake accurately.`,
	},
}

var topicIndex = func() map[string]models.LearnTopic {
	idx := make(map[string]models.LearnTopic, len(LearnTopics))
	for _, t := range LearnTopics {
		idx[t.ID] = t
	}
	return idx
}()

// TopicByID возвращает статью по id
func TopicByID(id string) (models.LearnTopic, bool) {
	t, ok := topicIndex[id]
	return t, ok
}
