package templates

// CSS class names shared with static/main.css and static/technologies.css.
const (
	ClassTitle = "title"

	ClassTechnologiesTitle    = "technologies__title"
	ClassTechnologiesSubtitle = "technologies__subtitle"
	ClassTechnologiesContent  = "technologies__content"
	ClassTechnologiesText     = "technologies__text"
	ClassTechnologiesList     = "technologies__list"
	ClassTechnologiesItem     = "technologies__item"

	ClassAboutSubtitle = "about__subtitle"
	ClassAboutText     = "about__text"
	ClassAboutLink     = "about__link"

	ClassErrorMessage = "error-state__message"
)

const technologiesStylesheet = "technologies.css"

// pageClasses lists every page-level class the templates emit.
func pageClasses() []string {
	return []string{
		ClassTitle,
		ClassTechnologiesTitle,
		ClassTechnologiesSubtitle,
		ClassTechnologiesContent,
		ClassTechnologiesText,
		ClassTechnologiesList,
		ClassTechnologiesItem,
		ClassAboutSubtitle,
		ClassAboutText,
		ClassAboutLink,
		ClassErrorMessage,
	}
}
