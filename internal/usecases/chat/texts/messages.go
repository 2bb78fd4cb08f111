package texts

// Тексты, которые бот отправляет пользователям.

const Welcome = `👋 Welcome to anonymous chat!

Commands:
/start - find a partner
/next - next partner
/stop - end the chat
/gender - set your gender
/interests - set your interests
/profile - show your profile
/girls - chat with girls only
/premium - premium status`

const Help = `Commands:
/start - find a partner
/next - next partner
/stop - end the chat
/gender girl|boy|other - set your gender
/interests music, movies - set your interests
/profile - show your profile
/girls - chat with girls only
/premium - premium status`

const Banned = "🚫 You are banned from using this bot."

const AlreadyChatting = "💬 You are already in a chat.\nSend /next to find a new partner or /stop to end the chat."

const WaitingEmptyQueue = "⌛ Waiting for a partner...\nTip: set /gender and /interests to get better matches."

const WaitingNoCandidate = "⌛ No suitable partner right now, you are in the queue.\nI will connect you as soon as someone shows up."

const PartnerLeft = "⚠️ The stranger left the chat.\nSend /start to find a new one."

const NextSearching = "⏭ Searching for a new partner..."

const Stopped = "👋 Chat ended.\nSend /start when you want to talk again."

const NotInChat = "🤷 You are not in a chat right now.\nSend /start to find a partner."

const DeliveryFailed = "⚠️ Could not deliver your message, the partner seems to be unavailable.\nSearching for a new partner..."

const GenderUsage = "Usage: /gender girl|boy|other"

const InterestsUsage = "Usage: /interests music, movies, travel"

const InterestsCleared = "✅ Interests cleared."

const GirlsInvoiceTitle = "Girls-only filter"

const InvoiceError = "😔 Could not create the invoice, please try again later."

const PaymentSuccess = "💝 Payment received! Girls-only filter is now active.\nSend /next to use it right away."

const NotAdmin = "⛔ This command is available to admins only."

const AdminPanel = `🛠 Admin commands:
/stats - bot statistics
/list_waiting - users in the queue
/list_users - registered users
/ban <id> - ban a user
/unban <id> - unban a user
/forcepair <id1> <id2> - pair two users
/broadcast <text> - message all users
/export - export the data file
/shutdown - stop the bot`

const BanUsage = "Usage: /ban <user_id>"

const UnbanUsage = "Usage: /unban <user_id>"

const ForcePairUsage = "Usage: /forcepair <user_id1> <user_id2>"

const BroadcastUsage = "Usage: /broadcast <text>"

const WaitingEmpty = "The queue is empty."

const NoUsers = "No registered users yet."

const ExportFailed = "😔 Could not export the data file."

const ShuttingDown = "🛑 Shutting down..."
