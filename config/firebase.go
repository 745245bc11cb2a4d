package config

// FirebaseServiceAccountKeyPath points to the Firebase service-account JSON
// used by the FCM push channel.
var FirebaseServiceAccountKeyPath = "config/firebase-service-account.json"
