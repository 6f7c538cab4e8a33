package ui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeySettings           = "settings"
	KeyNavArchive         = "nav_archive"
	KeyNavScriptorium     = "nav_scriptorium"
	KeyNewManuscript      = "new_manuscript"
	KeyArchiveEmpty       = "archive_empty"
	KeyArchiveCount       = "archive_count"
	KeyDownload           = "download"
	KeyNoImage            = "no_image"
	KeyImageSaved         = "image_saved"
	KeyCharacters         = "characters"
	KeyCollection         = "collection"
	KeyPreview            = "preview"
	KeyDocumentAndSave    = "document_and_save"
	KeyDocumenting        = "documenting"
	KeyNothingToSave      = "nothing_to_save"
	KeyRenderFailed       = "render_failed"
	KeyResolution         = "resolution"
	KeyDataSection        = "data_section"
	KeyExportLedger       = "export_ledger"
	KeyLedgerEmpty        = "ledger_empty"
	KeyLedgerExported     = "ledger_exported"
	KeyIncinerate         = "incinerate"
	KeyIncinerateConfirm  = "incinerate_confirm"
	KeyIncinerated        = "incinerated"
	KeyPreferences        = "preferences"
	KeyExportDirectory    = "export_directory"
	KeyExportScale        = "export_scale"
	KeyAutoReveal         = "auto_reveal"
	KeyPresetFile         = "preset_file"
	KeyScriptFont         = "script_font"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeySettingsSaved      = "settings_saved"
	KeyRestartRequired    = "restart_required"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyHistoryUnreadable  = "history_unreadable"
	KeyInterfaceSection   = "interface_section"
	KeyCardHasNoImageFile = "card_no_image_file"
	KeyLibraryTitle       = "library_title"
	KeyLibrarySubtitle    = "library_subtitle"
	KeyEnterScriptorium   = "enter_scriptorium"
	KeyAtelier            = "atelier"
	KeyPhilosophyTitle    = "philosophy_title"
	KeyPhilosophy         = "philosophy"
	KeyLedgerHint         = "ledger_hint"
	KeyIncinerateHint     = "incinerate_hint"
	KeyExportFormat       = "export_format"
	KeyDocumentedHint     = "documented_hint"
	KeyOpenImage          = "open_image"
	KeyScriptFontMissing  = "script_font_missing"
)

// Language codes
const (
	LangSystem  = "system"
	LangEnglish = "en"
)

var (
	supportedLanguages = []string{"en", "ru", "pt"}
	languageMatcher    = language.NewMatcher([]language.Tag{
		language.English,
		language.Russian,
		language.Portuguese,
	})
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; "system" follows the OS locale
func (l *Localization) SetLanguage(lang string) {
	if lang == LangSystem {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns localized text for key with args applied
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// systemLanguage matches the POSIX locale variables against the supported languages
func systemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if code, ok := matchLocale(os.Getenv(env)); ok {
			return code
		}
	}
	return LangEnglish
}

// matchLocale maps a locale such as "pt_BR.UTF-8" to a supported language code
func matchLocale(locale string) (string, bool) {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return "", false
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "", false
	}
	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return "", false
	}
	return supportedLanguages[index], true
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Muse",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeySettings:           "Settings",
		KeyNavArchive:         "Archive",
		KeyNavScriptorium:     "Scriptorium",
		KeyNewManuscript:      "New Manuscript",
		KeyArchiveEmpty:       "The archive is empty. Begin a new manuscript.",
		KeyArchiveCount:       "%d manuscripts",
		KeyDownload:           "Download",
		KeyNoImage:            "This manuscript has no stored image",
		KeyImageSaved:         "Saved to %s",
		KeyCharacters:         "%d characters",
		KeyCollection:         "Collection",
		KeyPreview:            "Preview",
		KeyDocumentAndSave:    "Document and Save",
		KeyDocumenting:        "Documenting...",
		KeyNothingToSave:      "Write something first",
		KeyRenderFailed:       "Could not render the card",
		KeyResolution:         "Export resolution %dx (%d × %d px)",
		KeyDataSection:        "Data",
		KeyExportLedger:       "Export Ledger",
		KeyLedgerEmpty:        "The archive is empty, nothing to export",
		KeyLedgerExported:     "Ledger exported to %s",
		KeyIncinerate:         "Incinerate Archive",
		KeyIncinerateConfirm:  "Permanently erase every manuscript? This cannot be undone.",
		KeyIncinerated:        "The archive has been incinerated",
		KeyPreferences:        "Preferences",
		KeyExportDirectory:    "Export Directory",
		KeyExportScale:        "Export Scale",
		KeyAutoReveal:         "Show exported files in folder",
		KeyPresetFile:         "Custom Collections File",
		KeyScriptFont:         "Nastaliq Font File",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyRestartRequired:    "Font and collection changes apply after restart",
		KeyErrorOpeningFile:   "Error opening file",
		KeyHistoryUnreadable:  "Stored manuscripts could not be read and were skipped",
		KeyInterfaceSection:   "Interface",
		KeyCardHasNoImageFile: "Image not available",
		KeyLibraryTitle:       "The Private Library",
		KeyLibrarySubtitle:    "A digital record of fleeting revelations",
		KeyEnterScriptorium:   "Enter the Scriptorium",
		KeyAtelier:            "Atelier Management",
		KeyPhilosophyTitle:    "Our Philosophy",
		KeyPhilosophy:         "Muse is a sanctuary for the contemplative scribe. In an age of ephemeral chatter, we believe in the physical weight of words.",
		KeyLedgerHint:         "Compile your entire history into a portable JSON document for safekeeping.",
		KeyIncinerateHint:     "Permanently destroy all manuscripts stored on this device.",
		KeyExportFormat:       "PNG Lossless",
		KeyDocumentedHint:     "This manuscript has been documented and saved to your device.",
		KeyOpenImage:          "Open image",
		KeyScriptFontMissing:  "No script font is configured, so this collection renders without its glyphs. Choose one in Preferences.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Muse",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeySettings:           "Настройки",
		KeyNavArchive:         "Архив",
		KeyNavScriptorium:     "Скрипторий",
		KeyNewManuscript:      "Новая рукопись",
		KeyArchiveEmpty:       "Архив пуст. Начните новую рукопись.",
		KeyArchiveCount:       "Рукописей: %d",
		KeyDownload:           "Скачать",
		KeyNoImage:            "У этой рукописи нет сохранённого изображения",
		KeyImageSaved:         "Сохранено в %s",
		KeyCharacters:         "Символов: %d",
		KeyCollection:         "Коллекция",
		KeyPreview:            "Предпросмотр",
		KeyDocumentAndSave:    "Записать и сохранить",
		KeyDocumenting:        "Запись...",
		KeyNothingToSave:      "Сначала напишите что-нибудь",
		KeyRenderFailed:       "Не удалось отрисовать карточку",
		KeyResolution:         "Разрешение экспорта %dx (%d × %d пикс.)",
		KeyDataSection:        "Данные",
		KeyExportLedger:       "Экспорт реестра",
		KeyLedgerEmpty:        "Архив пуст, экспортировать нечего",
		KeyLedgerExported:     "Реестр сохранён в %s",
		KeyIncinerate:         "Сжечь архив",
		KeyIncinerateConfirm:  "Безвозвратно стереть все рукописи? Это действие нельзя отменить.",
		KeyIncinerated:        "Архив сожжён",
		KeyPreferences:        "Параметры",
		KeyExportDirectory:    "Папка экспорта",
		KeyExportScale:        "Масштаб экспорта",
		KeyAutoReveal:         "Показывать файлы в папке после экспорта",
		KeyPresetFile:         "Файл коллекций",
		KeyScriptFont:         "Файл шрифта насталик",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyRestartRequired:    "Изменения шрифта и коллекций вступят в силу после перезапуска",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyHistoryUnreadable:  "Сохранённые рукописи не удалось прочитать",
		KeyInterfaceSection:   "Интерфейс",
		KeyCardHasNoImageFile: "Изображение недоступно",
		KeyLibraryTitle:       "Личная библиотека",
		KeyLibrarySubtitle:    "Цифровая летопись мимолётных откровений",
		KeyEnterScriptorium:   "Войти в скрипторий",
		KeyAtelier:            "Управление мастерской",
		KeyPhilosophyTitle:    "Наша философия",
		KeyPhilosophy:         "Muse есть убежище для созерцательного писца. В век мимолётной болтовни мы верим в вес слов.",
		KeyLedgerHint:         "Соберите всю историю в переносимый JSON-документ.",
		KeyIncinerateHint:     "Навсегда уничтожить все рукописи на этом устройстве.",
		KeyExportFormat:       "PNG без потерь",
		KeyDocumentedHint:     "Рукопись записана и сохранена на устройстве.",
		KeyOpenImage:          "Открыть изображение",
		KeyScriptFontMissing:  "Шрифт письменности не настроен, поэтому эта коллекция отображается без глифов. Выберите его в настройках.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Muse",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeySettings:           "Configurações",
		KeyNavArchive:         "Arquivo",
		KeyNavScriptorium:     "Scriptorium",
		KeyNewManuscript:      "Novo Manuscrito",
		KeyArchiveEmpty:       "O arquivo está vazio. Comece um novo manuscrito.",
		KeyArchiveCount:       "%d manuscritos",
		KeyDownload:           "Baixar",
		KeyNoImage:            "Este manuscrito não tem imagem salva",
		KeyImageSaved:         "Salvo em %s",
		KeyCharacters:         "%d caracteres",
		KeyCollection:         "Coleção",
		KeyPreview:            "Pré-visualização",
		KeyDocumentAndSave:    "Documentar e Salvar",
		KeyDocumenting:        "Documentando...",
		KeyNothingToSave:      "Escreva algo primeiro",
		KeyRenderFailed:       "Não foi possível gerar o cartão",
		KeyResolution:         "Resolução de exportação %dx (%d × %d px)",
		KeyDataSection:        "Dados",
		KeyExportLedger:       "Exportar Registro",
		KeyLedgerEmpty:        "O arquivo está vazio, nada para exportar",
		KeyLedgerExported:     "Registro exportado para %s",
		KeyIncinerate:         "Incinerar Arquivo",
		KeyIncinerateConfirm:  "Apagar permanentemente todos os manuscritos? Isso não pode ser desfeito.",
		KeyIncinerated:        "O arquivo foi incinerado",
		KeyPreferences:        "Preferências",
		KeyExportDirectory:    "Diretório de Exportação",
		KeyExportScale:        "Escala de Exportação",
		KeyAutoReveal:         "Mostrar arquivos exportados na pasta",
		KeyPresetFile:         "Arquivo de Coleções",
		KeyScriptFont:         "Arquivo de Fonte Nastaliq",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyRestartRequired:    "Mudanças de fonte e coleções valem após reiniciar",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeyHistoryUnreadable:  "Os manuscritos salvos não puderam ser lidos",
		KeyInterfaceSection:   "Interface",
		KeyCardHasNoImageFile: "Imagem indisponível",
		KeyLibraryTitle:       "A Biblioteca Privada",
		KeyLibrarySubtitle:    "Um registro digital de revelações fugazes",
		KeyEnterScriptorium:   "Entrar no Scriptorium",
		KeyAtelier:            "Gestão do Ateliê",
		KeyPhilosophyTitle:    "Nossa Filosofia",
		KeyPhilosophy:         "Muse é um santuário para o escriba contemplativo. Numa era de conversa efêmera, acreditamos no peso das palavras.",
		KeyLedgerHint:         "Reúna todo o seu histórico em um documento JSON portátil.",
		KeyIncinerateHint:     "Destruir permanentemente todos os manuscritos deste dispositivo.",
		KeyExportFormat:       "PNG sem perdas",
		KeyDocumentedHint:     "Este manuscrito foi documentado e salvo no seu dispositivo.",
		KeyOpenImage:          "Abrir imagem",
		KeyScriptFontMissing:  "Nenhuma fonte de escrita configurada, então esta coleção é renderizada sem seus glifos. Escolha uma nas Preferências.",
	}
}
