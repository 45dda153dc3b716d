package usecases

import "time"

// nowFunc indirects time.Now so deadline behavior can be pinned in tests
var nowFunc = time.Now
